package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/diag-rot-line/internal/config"
	"github.com/iburimskiy/diag-rot-line/internal/game"
)

var (
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
	headlessFlag = flag.Bool("headless", false, "Run without a window, logging frames")
	tapsFlag     = flag.Int("taps", 10, "Number of steps to animate in headless mode")
	muteFlag     = flag.Bool("mute", false, "Disable settle sounds")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := config.Default()
	if err != nil {
		fatal(err)
	}
	log.Printf("[Config] %d nodes x %d lines, tick %v", cfg.Chain.Nodes, cfg.Chain.Lines, cfg.Animation.TickPeriod)

	if *headlessFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		done, err := game.RunHeadless(ctx, cfg, *tapsFlag)
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal(err)
		}
		fmt.Printf("animated %d steps\n", done)
		return
	}

	g, err := game.New(cfg, game.Options{Sound: !*muteFlag})
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err on stderr and, when a window would have been shown, in
// a dialog, then exits.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "diag-rot-line:", err)
	if !*headlessFlag {
		if derr := zenity.Error(err.Error(), zenity.Title("Diagonal Rotating Lines"), zenity.ErrorIcon); derr != nil {
			fmt.Fprintln(os.Stderr, "error dialog:", derr)
		}
	}
	os.Exit(1)
}
