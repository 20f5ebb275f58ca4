package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		v := r.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestStringUsesAlphabet(t *testing.T) {
	s := New().String(12, IDAlphabet)
	assert.Len(t, s, 12)
	for _, ch := range s {
		assert.True(t, strings.ContainsRune(IDAlphabet, ch), "unexpected %q", ch)
	}
	assert.Equal(t, "", New().String(0, IDAlphabet))
}

func TestSeededIsReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, NewSeeded(7).String(12, IDAlphabet), NewSeeded(7).String(12, IDAlphabet))
}

func TestSeededDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, NewSeeded(1).String(16, IDAlphabet), NewSeeded(2).String(16, IDAlphabet))
}

func TestSeededIntnStaysInRange(t *testing.T) {
	r := NewSeeded(3)
	for i := 0; i < 200; i++ {
		v := r.Intn(16)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 16)
	}
	assert.Equal(t, 0, r.Intn(-1))
}
