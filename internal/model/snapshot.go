package model

import "fmt"

// BoardSnapshot is the serialisable state of a Board
type BoardSnapshot struct {
	Order    []CubeID     `json:"order"`    // row-major grid order
	Faces    []int        `json:"faces"`    // showing face index, by CubeID
	Statuses []CubeStatus `json:"statuses"` // by CubeID
	Path     []CubeID     `json:"path"`
	Found    []string     `json:"found"`
}

// Snapshot captures the board's current state
func (b *Board) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		Order:    make([]CubeID, CubeCount),
		Faces:    make([]int, CubeCount),
		Statuses: make([]CubeStatus, CubeCount),
		Path:     b.Path(),
		Found:    b.CompletedWords(),
	}
	copy(snap.Order, b.order[:])
	for i, cube := range b.cubes {
		snap.Faces[i] = cube.FaceIndex()
		snap.Statuses[i] = cube.Status()
	}
	return snap
}

// RestoreBoard rebuilds a board from a snapshot, rejecting snapshots that
// break the board's invariants
func RestoreBoard(snap BoardSnapshot, lexicon Lexicon) (*Board, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	b := NewBoard(lexicon)
	copy(b.order[:], snap.Order)
	for i, cube := range b.cubes {
		cube.setFace(snap.Faces[i])
		cube.SetStatus(snap.Statuses[i])
	}
	b.rebuildPositions()
	b.path = append([]CubeID(nil), snap.Path...)
	b.found = append([]string(nil), snap.Found...)
	return b, nil
}

// Validate checks that the snapshot describes a legal board
func (s BoardSnapshot) Validate() error {
	if len(s.Order) != CubeCount || len(s.Faces) != CubeCount || len(s.Statuses) != CubeCount {
		return fmt.Errorf("%w: expected %d cubes", ErrInvalidSnapshot, CubeCount)
	}

	var seen [CubeCount]bool
	for _, id := range s.Order {
		if id < 0 || int(id) >= CubeCount || seen[id] {
			return fmt.Errorf("%w: order is not a permutation", ErrInvalidSnapshot)
		}
		seen[id] = true
	}

	mostRecent := 0
	for i := range s.Faces {
		if s.Faces[i] < 0 || s.Faces[i] >= FacesPerCube {
			return fmt.Errorf("%w: cube %d face %d", ErrInvalidSnapshot, i, s.Faces[i])
		}
		if !s.Statuses[i].IsValid() {
			return fmt.Errorf("%w: cube %d status %d", ErrInvalidSnapshot, i, s.Statuses[i])
		}
		if s.Statuses[i] == StatusMostRecentlySelected {
			mostRecent++
		}
	}
	if mostRecent > 1 {
		return fmt.Errorf("%w: %d most recently selected cubes", ErrInvalidSnapshot, mostRecent)
	}

	for _, id := range s.Path {
		if id < 0 || int(id) >= CubeCount || s.Statuses[id] == StatusUnselected {
			return fmt.Errorf("%w: path cube %d", ErrInvalidSnapshot, id)
		}
	}

	words := make(map[string]struct{}, len(s.Found))
	for _, w := range s.Found {
		if _, dup := words[w]; dup {
			return fmt.Errorf("%w: duplicate word %q", ErrInvalidSnapshot, w)
		}
		words[w] = struct{}{}
	}
	return nil
}
