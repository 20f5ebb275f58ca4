package dice

import (
	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/model"
)

// SixSidedDie rolls a uniformly random face index
type SixSidedDie struct {
	random random.Random
}

// Ensure the dice implement model.Die
var (
	_ model.Die = (*SixSidedDie)(nil)
	_ model.Die = (*PredictableDie)(nil)
)

// NewSixSidedDie creates a die backed by the given random source
func NewSixSidedDie(rnd random.Random) *SixSidedDie {
	return &SixSidedDie{random: rnd}
}

// Roll returns a face index in [0, 6)
func (d *SixSidedDie) Roll() int {
	return d.random.Intn(model.FacesPerCube)
}

// PredictableDie always rolls the same value
type PredictableDie struct {
	value int
}

// NewPredictableDie creates a die that always rolls value
func NewPredictableDie(value int) (*PredictableDie, error) {
	if value < 0 || value >= model.FacesPerCube {
		return nil, model.ErrInvalidDieValue
	}
	return &PredictableDie{value: value}, nil
}

// Roll returns the fixed value
func (d *PredictableDie) Roll() int {
	return d.value
}
