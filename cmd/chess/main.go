// Terminal front end for the chess engine: reads "e2 e4", "undo",
// "restart" and "quit" commands, renders the board, and displays the
// countdown clocks. All rule decisions live in internal/game.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MVS-Jaithra/chess-game/internal/clock"
	"github.com/MVS-Jaithra/chess-game/internal/game"
	"github.com/MVS-Jaithra/chess-game/internal/shared"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getenv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seconds := flag.Int("seconds", getenvInt("CHESS_CLOCK_SECONDS", 600), "starting seconds per side")
	whiteName := flag.String("white", getenv("CHESS_WHITE_NAME", "White"), "white player name")
	blackName := flag.String("black", getenv("CHESS_BLACK_NAME", "Black"), "black player name")
	flag.Parse()

	names := map[shared.Color]string{
		shared.White: *whiteName,
		shared.Black: *blackName,
	}

	eng := game.NewEngine()
	clk := clock.New(*seconds)
	eng.AttachClock(clk)
	clk.Start()
	defer clk.Stop()

	log.Info().
		Str("white", *whiteName).
		Str("black", *blackName).
		Int("seconds", *seconds).
		Msg("game started")

	in := bufio.NewScanner(os.Stdin)
	for {
		render(eng)
		fmt.Printf("clock %s %s / %s %s\n",
			names[shared.White], formatSeconds(clk.Remaining(shared.White)),
			names[shared.Black], formatSeconds(clk.Remaining(shared.Black)))
		fmt.Printf("%s (%s)> ", names[eng.Turn()], eng.Turn())

		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(strings.ToLower(in.Text()))

		switch {
		case line == "":
			continue
		case line == "quit":
			log.Info().Msg("quitting")
			return
		case line == "undo":
			if err := eng.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			log.Debug().Str("note", eng.LastNote()).Msg("undo")
		case line == "restart":
			eng.Restart()
			log.Info().Msg("game restarted")
		default:
			if err := submit(eng, line); err != nil {
				fmt.Println(err)
				continue
			}
			log.Debug().Str("move", line).Str("status", eng.Status().String()).Msg("move accepted")
		}

		if fallen := flagFallen(clk); fallen != nil {
			fmt.Printf("%s is out of time\n", names[*fallen])
		}
		if eng.Status().Terminal() {
			render(eng)
			fmt.Println(eng.LastNote())
			clk.Stop()
			return
		}
	}
}

func submit(eng *game.Engine, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("expected a move like \"e2 e4\", got %q", line)
	}
	from, err := shared.ParseSquare(fields[0])
	if err != nil {
		return err
	}
	to, err := shared.ParseSquare(fields[1])
	if err != nil {
		return err
	}
	if err := eng.SubmitMove(from, to); err != nil {
		if errors.Is(err, game.ErrIllegalOperation) {
			return fmt.Errorf("%v (try \"restart\")", err)
		}
		return err
	}
	return nil
}

func flagFallen(clk *clock.Clock) *shared.Color {
	for _, color := range []shared.Color{shared.White, shared.Black} {
		if clk.FlagFallen(color) {
			c := color
			return &c
		}
	}
	return nil
}

func render(eng *game.Engine) {
	grid := eng.Snapshot()
	fmt.Println("  a b c d e f g h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			cell := grid[rank][file]
			if cell == nil {
				fmt.Print(". ")
				continue
			}
			glyph := cell.Type.String()
			if cell.Color == shared.Black {
				glyph = strings.ToLower(glyph)
			}
			fmt.Print(glyph + " ")
		}
		fmt.Printf("%d\n", rank+1)
	}
	fmt.Println("  a b c d e f g h")
	fmt.Println(eng.LastNote())
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
