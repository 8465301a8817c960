// Package trail holds fixed-capacity position history for particles.
package trail

// Ring keeps the most recent Cap() values pushed into it. Pushing into a
// full ring overwrites the oldest value. A zero-capacity ring discards
// everything.
type Ring[T any] struct {
	buf   []T
	start int
	n     int
}

func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) Cap() int { return len(r.buf) }

func (r *Ring[T]) Len() int { return r.n }

func (r *Ring[T]) Push(v T) {
	if len(r.buf) == 0 {
		return
	}
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = v
		r.n++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// At returns the i-th value, oldest first. It panics when i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.n {
		panic("trail: index out of range")
	}
	return r.buf[(r.start+i)%len(r.buf)]
}

// Last returns the newest value and false when the ring is empty.
func (r *Ring[T]) Last() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	return r.At(r.n - 1), true
}

// Do calls fn for each value, oldest first.
func (r *Ring[T]) Do(fn func(i int, v T)) {
	for i := 0; i < r.n; i++ {
		fn(i, r.buf[(r.start+i)%len(r.buf)])
	}
}

// Slice copies the values out, oldest first.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.n)
	r.Do(func(i int, v T) { out[i] = v })
	return out
}

func (r *Ring[T]) Reset() {
	r.start = 0
	r.n = 0
}
