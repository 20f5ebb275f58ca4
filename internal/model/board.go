package model

import (
	"fmt"
	"strings"
)

const (
	// BoardSize is the grid dimension
	BoardSize = 4
	// CubeCount is the number of cubes on a board
	CubeCount = BoardSize * BoardSize
)

// StandardCubes are the sixteen cubes supplied with the standard game, indexed by CubeID
var StandardCubes = [CubeCount][FacesPerCube]string{
	{"A", "A", "C", "I", "O", "T"},
	{"T", "Y", "A", "B", "I", "L"},
	{"J", "M", "O", "Qu", "A", "B"},
	{"A", "C", "D", "E", "M", "P"},
	{"A", "C", "E", "L", "S", "R"},
	{"A", "D", "E", "N", "V", "Z"},
	{"A", "H", "M", "O", "R", "S"},
	{"B", "F", "I", "O", "R", "X"},
	{"D", "E", "N", "O", "S", "W"},
	{"D", "K", "N", "O", "T", "U"},
	{"E", "E", "F", "H", "I", "Y"},
	{"E", "G", "I", "N", "T", "V"},
	{"E", "G", "K", "L", "U", "Y"},
	{"E", "H", "I", "N", "P", "S"},
	{"E", "L", "P", "S", "T", "U"},
	{"G", "I", "L", "R", "U", "W"},
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// IsValid returns true if the position is within the grid
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// SelectionResult describes what a reported selection did to the board
type SelectionResult string

const (
	SelectionExtended SelectionResult = "extended" // cube appended to the path
	SelectionAccepted SelectionResult = "accepted" // repeat click submitted a new valid word
	SelectionRejected SelectionResult = "rejected" // repeat click submitted an invalid or duplicate word
	SelectionIgnored  SelectionResult = "ignored"  // cube not adjacent to the path tail
)

// SelectionOutcome is the result of Board.ReportSelection
type SelectionOutcome struct {
	Result SelectionResult
	Word   string // submitted word for accepted/rejected outcomes
}

// Board is a 4x4 grid of cubes plus the state of the word being built.
// A Board is not safe for concurrent use.
type Board struct {
	lexicon Lexicon

	cubes     [CubeCount]*Cube    // arena, indexed by CubeID
	order     [CubeCount]CubeID   // row-major grid order
	positions [CubeCount]Position // indexed by CubeID, rebuilt from order

	path  []CubeID
	found []string
}

// NewBoard creates a board of the standard cubes in id order, each showing its first face
func NewBoard(lexicon Lexicon) *Board {
	b := &Board{lexicon: lexicon}
	for i := range b.cubes {
		cube := NewCube(CubeID(i), StandardCubes[i])
		cube.board = b
		b.cubes[i] = cube
		b.order[i] = CubeID(i)
	}
	b.rebuildPositions()
	return b
}

func (b *Board) rebuildPositions() {
	for i, id := range b.order {
		b.positions[id] = Position{Row: i / BoardSize, Col: i % BoardSize}
	}
}

// Cube returns the cube currently at the given row and column
func (b *Board) Cube(row, col int) (*Cube, error) {
	pos := Position{Row: row, Col: col}
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: row %d, col %d", ErrInvalidPosition, row, col)
	}
	return b.cubes[b.order[row*BoardSize+col]], nil
}

// Cubes returns the cubes in row-major grid order
func (b *Board) Cubes() []*Cube {
	cubes := make([]*Cube, CubeCount)
	for i, id := range b.order {
		cubes[i] = b.cubes[id]
	}
	return cubes
}

// CubeByID returns the cube with the given identity
func (b *Board) CubeByID(id CubeID) (*Cube, error) {
	if id < 0 || int(id) >= CubeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCube, id)
	}
	return b.cubes[id], nil
}

// Position returns the grid position of the cube with the given identity
func (b *Board) Position(id CubeID) (Position, error) {
	if id < 0 || int(id) >= CubeCount {
		return Position{}, fmt.Errorf("%w: %d", ErrUnknownCube, id)
	}
	return b.positions[id], nil
}

// ShakeCubes shuffles the cubes into new positions and rolls each one.
// Selection state is left alone; callers starting over should also clear it.
func (b *Board) ShakeCubes(shuffler Shuffler, die Die) {
	shuffler.Shuffle(len(b.order), func(i, j int) {
		b.order[i], b.order[j] = b.order[j], b.order[i]
	})
	for _, id := range b.order {
		b.cubes[id].Roll(die)
	}
	b.rebuildPositions()
}

// Adjacent returns true if the two distinct cubes touch horizontally,
// vertically or diagonally
func (b *Board) Adjacent(c1, c2 *Cube) bool {
	if c1 == nil || c2 == nil || c1.Is(c2) {
		return false
	}
	p1, p2 := b.positions[c1.ID()], b.positions[c2.ID()]
	return abs(p1.Row-p2.Row) <= 1 && abs(p1.Col-p2.Col) <= 1
}

// UnselectAll marks every cube unselected. The path is not cleared.
func (b *Board) UnselectAll() {
	for _, cube := range b.cubes {
		cube.SetStatus(StatusUnselected)
	}
}

// ClearSelection abandons the word in progress
func (b *Board) ClearSelection() {
	b.path = nil
	b.UnselectAll()
}

// ReportSelection applies one player selection. Selecting a cube adjacent to
// the path tail (or any cube when the path is empty) extends the path;
// selecting the tail again submits the word; any other cube is ignored.
func (b *Board) ReportSelection(id CubeID) (SelectionOutcome, error) {
	current, err := b.CubeByID(id)
	if err != nil {
		return SelectionOutcome{}, err
	}

	previous := b.previousCube()
	switch {
	case previous == nil || b.Adjacent(current, previous):
		b.selectCube(current, previous)
		return SelectionOutcome{Result: SelectionExtended}, nil
	case current.Is(previous):
		word := strings.ToUpper(b.WordSoFar())
		if b.submitWord(word) {
			return SelectionOutcome{Result: SelectionAccepted, Word: word}, nil
		}
		return SelectionOutcome{Result: SelectionRejected, Word: word}, nil
	default:
		return SelectionOutcome{Result: SelectionIgnored}, nil
	}
}

func (b *Board) previousCube() *Cube {
	if len(b.path) == 0 {
		return nil
	}
	return b.cubes[b.path[len(b.path)-1]]
}

func (b *Board) selectCube(current, previous *Cube) {
	if previous != nil {
		previous.SetStatus(StatusSelected)
	}
	current.SetStatus(StatusMostRecentlySelected)
	b.path = append(b.path, current.ID())
}

// submitWord records word if it is new and in the lexicon, then resets the
// selection either way. Returns whether the word was recorded.
func (b *Board) submitWord(word string) bool {
	accepted := false
	if !b.HasFound(word) && b.lexicon != nil && b.lexicon.Contains(word) {
		b.found = append(b.found, word)
		accepted = true
	}
	b.ClearSelection()
	return accepted
}

// HasFound returns true if word is already in the completed words
func (b *Board) HasFound(word string) bool {
	for _, w := range b.found {
		if w == word {
			return true
		}
	}
	return false
}

// WordSoFar returns the letters of the selection path in selection order
func (b *Board) WordSoFar() string {
	var sb strings.Builder
	for _, id := range b.path {
		sb.WriteString(b.cubes[id].Letter())
	}
	return sb.String()
}

// CompletedWords returns the accepted words in the order they were found
func (b *Board) CompletedWords() []string {
	result := make([]string, len(b.found))
	copy(result, b.found)
	return result
}

// Path returns the ids of the selected cubes in selection order
func (b *Board) Path() []CubeID {
	result := make([]CubeID, len(b.path))
	copy(result, b.path)
	return result
}

// Lexicon returns the lexicon words are checked against
func (b *Board) Lexicon() Lexicon {
	return b.lexicon
}

// String renders the grid as four lines of letters
func (b *Board) String() string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		letters := make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			letters[col] = b.cubes[b.order[row*BoardSize+col]].Letter()
		}
		rows[row] = strings.Join(letters, " ")
	}
	return strings.Join(rows, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
