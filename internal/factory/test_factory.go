package factory

import (
	"time"

	"github.com/mcoot/boggle-go/internal/dependencies/dice"
	"github.com/mcoot/boggle-go/internal/dependencies/mocks"
	"github.com/mcoot/boggle-go/internal/storage/memory"
	"github.com/mcoot/boggle-go/internal/testutil"
)

// TestBoard is the layout of every board a TestApp deals:
//
//	U T P U
//	T I T S
//	R R V S
//	M A I O
//
// with cube ids
//
//	15 14 13 12
//	11 10  9  8
//	 7  6  5  4
//	 3  2  1  0
const TestBoard = "U T P U\nT I T S\nR R V S\nM A I O"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and predictable boards
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	die, err := dice.NewPredictableDie(PredictableFace)
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(store, mockClock, mockRandom, die, dice.ReverseShuffler{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// TestWords are words that can all be traced on TestBoard, plus a few that cannot
var TestWords = []string{
	// on the board
	"put", "pit", "tip", "tit", "tut", "its", "vis", "air", "mar",
	// not on the board
	"sit", "cat", "dog", "quiet",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadWords(TestWords)
}
