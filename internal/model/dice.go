package model

// Die picks the face a cube shows. Roll must return a value in [0, FacesPerCube).
type Die interface {
	Roll() int
}

// Shuffler reorders n elements by calling swap, with the same contract as
// math/rand.Shuffle
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Lexicon is the set of words accepted on submission. Words are uppercase.
type Lexicon interface {
	Contains(word string) bool
}
