package model

import "fmt"

// CubeID identifies a cube within its board (0-15)
type CubeID int

// FacesPerCube is the number of letter faces on every cube
const FacesPerCube = 6

// CubeStatus is the selection state of a cube
type CubeStatus int

const (
	StatusUnselected CubeStatus = iota
	StatusSelected
	StatusMostRecentlySelected
)

// String returns the display value for the status
func (s CubeStatus) String() string {
	switch s {
	case StatusUnselected:
		return "unselected"
	case StatusSelected:
		return "selected"
	case StatusMostRecentlySelected:
		return "most recently selected"
	}
	return "?"
}

// IsValid returns true for the three defined statuses
func (s CubeStatus) IsValid() bool {
	return s >= StatusUnselected && s <= StatusMostRecentlySelected
}

// SelectionReporter receives selections made directly on a cube
type SelectionReporter interface {
	ReportSelection(id CubeID) (SelectionOutcome, error)
}

// Cube is a single letter die. Faces are fixed at construction; the showing
// face and status change as the game is played.
type Cube struct {
	id     CubeID
	faces  [FacesPerCube]string
	face   int
	status CubeStatus
	board  SelectionReporter
}

// NewCube creates an unselected cube showing its first face
func NewCube(id CubeID, faces [FacesPerCube]string) *Cube {
	return &Cube{
		id:     id,
		faces:  faces,
		status: StatusUnselected,
	}
}

// ID returns the cube's stable identity
func (c *Cube) ID() CubeID {
	return c.id
}

// Letter returns the face currently showing (may be a digraph such as "Qu")
func (c *Cube) Letter() string {
	return c.faces[c.face]
}

// Faces returns a copy of all six faces
func (c *Cube) Faces() [FacesPerCube]string {
	return c.faces
}

// FaceIndex returns the index of the face currently showing
func (c *Cube) FaceIndex() int {
	return c.face
}

// Roll shows the face chosen by the die
func (c *Cube) Roll(die Die) {
	c.setFace(die.Roll())
}

func (c *Cube) setFace(face int) {
	if face < 0 || face >= FacesPerCube {
		panic(fmt.Sprintf("model: die value %d out of range [0,%d]", face, FacesPerCube-1))
	}
	c.face = face
}

// Select reports this cube as the player's latest selection to its board
func (c *Cube) Select() (SelectionOutcome, error) {
	if c.board == nil {
		return SelectionOutcome{}, ErrCubeDetached
	}
	return c.board.ReportSelection(c.id)
}

// Status returns the current selection status
func (c *Cube) Status() CubeStatus {
	return c.status
}

// SetStatus sets the selection status. Choreography is the board's job.
func (c *Cube) SetStatus(s CubeStatus) {
	c.status = s
}

// Is returns true if both values denote the same cube of a board
func (c *Cube) Is(other *Cube) bool {
	return c != nil && other != nil && c.id == other.id
}

// String returns the current letter
func (c *Cube) String() string {
	return c.Letter()
}
