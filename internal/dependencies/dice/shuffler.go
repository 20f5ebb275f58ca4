package dice

import (
	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/model"
)

// Ensure the shufflers implement model.Shuffler
var (
	_ model.Shuffler = (*RandomShuffler)(nil)
	_ model.Shuffler = NonShuffler{}
	_ model.Shuffler = ReverseShuffler{}
)

// RandomShuffler performs a uniform random permutation (Fisher-Yates)
type RandomShuffler struct {
	random random.Random
}

// NewRandomShuffler creates a shuffler backed by the given random source
func NewRandomShuffler(rnd random.Random) *RandomShuffler {
	return &RandomShuffler{random: rnd}
}

// Shuffle permutes n elements
func (s *RandomShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		swap(i, j)
	}
}

// NonShuffler keeps elements in their original order
type NonShuffler struct{}

// Shuffle does nothing
func (NonShuffler) Shuffle(n int, swap func(i, j int)) {}

// ReverseShuffler reverses the order of the elements
type ReverseShuffler struct{}

// Shuffle reverses n elements
func (ReverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
