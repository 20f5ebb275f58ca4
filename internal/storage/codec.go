package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/boggle-go/internal/model"
)

// GameFormatVersion is stamped on every encoded game
const GameFormatVersion = 1

// ErrUnsupportedFormat is returned when decoding a game written in an unknown format
var ErrUnsupportedFormat = errors.New("unsupported game format")

type gameEnvelope struct {
	Version int         `json:"v"`
	Game    *model.Game `json:"game"`
}

// EncodeGame serialises a game for the persistent backends
func EncodeGame(game *model.Game) ([]byte, error) {
	data, err := json.Marshal(gameEnvelope{Version: GameFormatVersion, Game: game})
	if err != nil {
		return nil, fmt.Errorf("encode game %s: %w", game.ID, err)
	}
	return data, nil
}

// DecodeGame parses a game written by EncodeGame and checks its board
func DecodeGame(data []byte) (*model.Game, error) {
	var env gameEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	if env.Version != GameFormatVersion || env.Game == nil {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedFormat, env.Version)
	}
	if err := env.Game.Board.Validate(); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", env.Game.ID, err)
	}
	return env.Game, nil
}
