package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/game"
)

const playHelp = `Commands:
  <id> [<id>...]  click cubes by id; click the last cube again to submit
  c, clear        abandon the word in progress
  r, round        finish the round and shake a new board
  m, missed       list words on the board you have not found
  b, board        show the board again
  h, help         show this help
  q, quit         leave the game`

func newPlayCmd() *cobra.Command {
	var (
		dictionaryPath string
		predictable    bool
		seed           uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{Logger: logger, Predictable: predictable, Seed: seed})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.DictionaryService.LoadFromFile(cmd.Context(), dictionaryPath); err != nil {
				return err
			}

			session := &playSession{
				controller: app.GameController,
				out:        NewOutput("text", cmd.OutOrStdout()),
			}
			return session.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&dictionaryPath, "dictionary", "data/words.txt", "Path to the word list")
	cmd.Flags().BoolVar(&predictable, "predictable", false, "Deal the same board every round")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible boards (0 picks a random game)")

	return cmd
}

// playSession runs a terminal game against an in-process controller
type playSession struct {
	controller game.ControllerInterface
	out        *Output
	gameID     model.GameID
}

func (p *playSession) run(ctx context.Context, in io.Reader) error {
	state, err := p.controller.NewGame(ctx)
	if err != nil {
		return err
	}
	p.gameID = state.Game.ID

	p.out.println(playHelp)
	p.out.println()
	p.out.printGame(response.GameFromState(state))

	scanner := bufio.NewScanner(in)
	for {
		p.out.printf("> ")
		if !scanner.Scan() {
			break
		}

		quit, err := p.handle(ctx, strings.Fields(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return p.finish(ctx)
}

// handle runs one line of input and reports whether the player quit
func (p *playSession) handle(ctx context.Context, fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit":
		return true, nil
	case "h", "help":
		p.out.println(playHelp)
	case "b", "board":
		state, err := p.controller.GetGame(ctx, p.gameID)
		if err != nil {
			return false, err
		}
		p.out.printGame(response.GameFromState(state))
	case "c", "clear":
		state, err := p.controller.Clear(ctx, p.gameID)
		if err != nil {
			return false, err
		}
		p.out.printGame(response.GameFromState(state))
	case "m", "missed":
		words, err := p.controller.Missed(ctx, p.gameID)
		if err != nil {
			return false, err
		}
		p.out.printMissed(response.MissedFromWords(words))
	case "r", "round":
		missed, err := p.controller.Missed(ctx, p.gameID)
		if err != nil {
			return false, err
		}
		p.out.printMissed(response.MissedFromWords(missed))

		state, err := p.controller.NewRound(ctx, p.gameID)
		if err != nil {
			return false, err
		}
		p.out.printf("\nRound %d\n\n", state.Game.Round)
		p.out.printGame(response.GameFromState(state))
	default:
		return false, p.selectCubes(ctx, fields)
	}
	return false, nil
}

func (p *playSession) selectCubes(ctx context.Context, fields []string) error {
	var (
		state   *game.State
		outcome model.SelectionOutcome
	)
	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			p.out.printf("Unknown command %q; type h for help\n", field)
			return nil
		}

		state, outcome, err = p.controller.Select(ctx, p.gameID, model.CubeID(id))
		if errors.Is(err, model.ErrUnknownCube) {
			p.out.printf("There is no cube %d\n", id)
			return nil
		}
		if err != nil {
			return err
		}
	}

	p.out.printSelect(response.SelectResponseFromState(state, outcome))
	return nil
}

func (p *playSession) finish(ctx context.Context) error {
	state, err := p.controller.GetGame(ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.println()
	p.out.println(fmt.Sprintf("Final score: %d over %d round(s)", state.Game.TotalScore()+state.Score, state.Game.Round))
	return p.controller.Delete(ctx, p.gameID)
}
