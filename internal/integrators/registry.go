package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/gravsim/internal/dynamo"
)

var constructors = map[string]func() dynamo.Integrator{
	"euler":  func() dynamo.Integrator { return NewEuler() },
	"verlet": func() dynamo.Integrator { return NewVerlet() },
}

// ByName returns a fresh integrator for name.
func ByName(name string) (dynamo.Integrator, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("integrator %q: %w", name, dynamo.ErrUnknownName)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
