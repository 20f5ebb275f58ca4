package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/boggle-go/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
		Long: `Commands for a game session on the server.

Commands taking an optional [id] use the game most recently created with
"boggle game new" when no id is given.`,
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSelectCmd())
	cmd.AddCommand(newGameClearCmd())
	cmd.AddCommand(newGameRoundCmd())
	cmd.AddCommand(newGameMissedCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func gamePath(id, action string) string {
	path := "/api/v1/games/" + url.PathEscape(id)
	if action != "" {
		path += "/" + action
	}
	return path
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Post(cmd.Context(), "/api/v1/games", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveGameID(result.ID); err != nil {
				return fmt.Errorf("failed to save game id: %w", err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show the game's board and words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result response.Game

			if err := client.Get(cmd.Context(), gamePath(id, ""), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameSelectCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "select <cube-id>...",
		Short: "Click one or more cubes in order",
		Long: `Click cubes by id. Clicking the last cube of the word again submits it.

  boggle game select 13 12 9 9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := cfg.ResolveGameID([]string{id})
			if err != nil {
				return err
			}

			cubes := make([]int, len(args))
			for i, arg := range args {
				cubes[i], err = strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid cube id %q: %w", arg, err)
				}
			}

			var result response.SelectResponse
			for _, cube := range cubes {
				req := map[string]int{"cube_id": cube}
				if err := client.Post(cmd.Context(), gamePath(gameID, "select"), req, &result); err != nil {
					return err
				}
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "game", "", "Game id (defaults to the current game)")
	return cmd
}

func newGameClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [id]",
		Short: "Abandon the word in progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(id, "clear"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round [id]",
		Short: "Finish the round and shake a new board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(id, "rounds"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameMissedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missed [id]",
		Short: "List words on the board that have not been found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result response.Missed

			if err := client.Get(cmd.Context(), gamePath(id, "missed"), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			// A game the server no longer has is still forgotten locally
			if err := client.Delete(cmd.Context(), gamePath(id, "")); err != nil && !IsNotFound(err) {
				return err
			}

			if err := cfg.ForgetGameID(id); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Game deleted")
			return nil
		},
	}
}
