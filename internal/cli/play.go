package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperoxo/hyperoxo/internal/dependencies/random"
	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/model"
	"github.com/hyperoxo/hyperoxo/internal/render"
	"github.com/hyperoxo/hyperoxo/internal/strategy"
)

// playerHuman selects interactive input instead of a registered strategy
const playerHuman = "human"

type playOptions struct {
	dimensions   int
	size         int
	movesPerTurn int
	misere       bool
	name1        string
	name2        string
	player1      string
	player2      string
	seed         uint64
	plain        bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		Long: `Play a game on h(d, n). Each player is either "human" (moves read from
stdin) or one of the automated strategies. Human moves use 1-based
coordinates: one digit per axis when n <= 9 (e.g. "123"), otherwise digit
runs split by any separator (e.g. "1,2,3"). The commands "undo", "forfeit"
and "quit" are also accepted at the move prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.dimensions, "dimensions", "d", 3, "Number of board dimensions")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 4, "Cells along each axis")
	cmd.Flags().IntVar(&opts.movesPerTurn, "moves-per-turn", 1, "Moves each player makes per turn")
	cmd.Flags().BoolVar(&opts.misere, "misere", false, "Misère rules: completing a line loses")
	cmd.Flags().StringVar(&opts.name1, "name1", "Player 1", "First player's name")
	cmd.Flags().StringVar(&opts.name2, "name2", "Player 2", "Second player's name")
	cmd.Flags().StringVar(&opts.player1, "player1", playerHuman, playerUsage())
	cmd.Flags().StringVar(&opts.player2, "player2", "heuristic", playerUsage())
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for automated players (0 for unpredictable)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable color output")

	return cmd
}

func playerUsage() string {
	return fmt.Sprintf("Player type: %s, %s",
		playerHuman, strings.Join(strategy.Names(), ", "))
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	engine, err := game.NewEngine(model.GameConfig{
		Dimensions:   opts.dimensions,
		Size:         opts.size,
		MovesPerTurn: opts.movesPerTurn,
		Misere:       opts.misere,
	})
	if err != nil {
		return err
	}
	if err := engine.SetNames(opts.name1, opts.name2); err != nil {
		return err
	}

	var rnd random.Random
	if opts.seed != 0 {
		rnd = random.NewSeeded(opts.seed)
	} else {
		rnd = random.New()
	}

	players, err := buildPlayers(engine, rnd, opts.player1, opts.player2)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(engine)
	renderer.Plain = opts.plain

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for !engine.State().Terminal() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderer.Render())

		active := engine.ActivePlayer()
		if players[active] != nil {
			cell, forfeited, err := players[active].Move(lastCell(engine))
			if err != nil {
				return err
			}
			if forfeited {
				if err := engine.Forfeit(); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s forfeits\n", engine.Names()[active])
				continue
			}
			fmt.Fprintf(out, "%s (%s) plays %s\n",
				engine.Names()[active], engine.Marks()[active], cell)
			continue
		}

		fmt.Fprintf(out, "%s (%s) to move: ",
			engine.Names()[active], engine.Marks()[active])
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "q":
			return nil
		case "undo", "u":
			engine.Undo(0)
			for _, p := range players {
				if p != nil {
					p.Undo()
				}
			}
		case "forfeit", "f":
			if err := engine.Forfeit(); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		default:
			if err := engine.MoveString(input, 1); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Render())
	fmt.Fprintln(out, engine.StateString())
	return nil
}

// buildPlayers maps the player flags to strategies; nil means interactive.
func buildPlayers(engine *game.Engine, rnd random.Random, names ...string) ([]strategy.Strategy, error) {
	players := make([]strategy.Strategy, len(names))
	for i, name := range names {
		if name == playerHuman {
			continue
		}
		s, ok := strategy.New(name, engine, rnd)
		if !ok {
			return nil, fmt.Errorf("unknown player type %q (want %s or %s)",
				name, playerHuman, strings.Join(strategy.Names(), ", "))
		}
		players[i] = s
	}
	return players, nil
}

func lastCell(engine *game.Engine) model.Coord {
	moves := engine.Moves()
	if len(moves) == 0 {
		return nil
	}
	return moves[len(moves)-1].Cell
}
