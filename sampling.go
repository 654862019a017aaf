package citygrid

import (
	"math/rand"

	"github.com/pkg/errors"
)

// RandomEntryPoint picks an entry point uniformly at random.
// Returns ErrDegenerateSampling if the city has none.
func (c *City) RandomEntryPoint(rng *rand.Rand) (Position, error) {
	if len(c.entryPoints) == 0 {
		return Position{}, errors.Wrap(ErrDegenerateSampling, "city has no entry points")
	}
	return c.entryPoints[rng.Intn(len(c.entryPoints))], nil
}

// RandomBuildingTarget picks a building target uniformly at random.
// Returns ErrDegenerateSampling if the city has none (which, for now, is
// always).
func (c *City) RandomBuildingTarget(rng *rand.Rand) (Target, error) {
	if len(c.buildings) == 0 {
		return Target{}, errors.Wrap(ErrDegenerateSampling, "city has no building targets")
	}
	return c.buildings[rng.Intn(len(c.buildings))], nil
}
