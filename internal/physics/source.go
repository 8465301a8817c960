package physics

import "github.com/san-kum/gravsim/internal/dynamo"

const (
	// SourceRadius is the display radius of a source and the death threshold.
	SourceRadius = 10.0
	// CaptureFactor scales the display radius into the capture radius.
	CaptureFactor = 5.0
)

type GravitySource struct {
	pos      dynamo.Vec2
	strength float64
	radius   float64
}

func NewGravitySource(x, y, strength float64) *GravitySource {
	return &GravitySource{
		pos:      dynamo.V(x, y),
		strength: strength,
		radius:   SourceRadius,
	}
}

func (s *GravitySource) Position() dynamo.Vec2 { return s.pos }
func (s *GravitySource) Strength() float64     { return s.strength }
func (s *GravitySource) Radius() float64       { return s.radius }

func (s *GravitySource) CaptureRadius() float64 {
	return CaptureFactor * s.radius
}

// Center is the on-screen centre of the source's disc. Positions anchor
// the top-left corner of a drawn disc, so the centre sits one radius
// further along both axes.
func (s *GravitySource) Center() dynamo.Vec2 {
	return dynamo.Vec2{X: s.pos.X + s.radius, Y: s.pos.Y + s.radius}
}

// Pull returns the unit direction from at towards the source and the
// inverse-square magnitude of the acceleration there. When the
// singularity policy rejects the distance both are zero.
func (s *GravitySource) Pull(at dynamo.Vec2, sing SingularityPolicy) (dynamo.Vec2, float64) {
	d := s.pos.Sub(at)
	r := d.Len()

	eff, ok := sing.Distance(r)
	if !ok {
		return dynamo.Vec2{}, 0
	}

	invDist := 1.0 / r
	n := dynamo.Vec2{X: invDist * d.X, Y: invDist * d.Y}

	invEff := 1.0 / eff
	return n, s.strength * invEff * invEff
}

// Accel is Pull scaled into a vector.
func (s *GravitySource) Accel(at dynamo.Vec2, sing SingularityPolicy) dynamo.Vec2 {
	n, mag := s.Pull(at, sing)
	return dynamo.Vec2{X: n.X * mag, Y: n.Y * mag}
}
