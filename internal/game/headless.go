package game

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iburimskiy/diag-rot-line/internal/anim"
	"github.com/iburimskiy/diag-rot-line/internal/config"
)

// frameLogger is an anim.Drawer that writes one log line per frame.
type frameLogger struct {
	b strings.Builder
}

func (f *frameLogger) DrawNode(i int, progress float64) {
	if f.b.Len() > 0 {
		f.b.WriteByte(' ')
	}
	fmt.Fprintf(&f.b, "%d:%.3f", i, progress)
}

func (f *frameLogger) flush() {
	log.Printf("[Frame] %s", f.b.String())
	f.b.Reset()
}

// RunHeadless animates the chain without a window, pressing again each time
// the previous step finishes, until taps steps have completed or ctx ends.
// It returns the number of completed steps.
func RunHeadless(ctx context.Context, cfg config.Config, taps int) (int, error) {
	ticker := time.NewTicker(cfg.Animation.TickPeriod)
	defer ticker.Stop()
	return runHeadless(ctx, cfg, ticker.C, taps)
}

func runHeadless(ctx context.Context, cfg config.Config, clock <-chan time.Time, taps int) (int, error) {
	frames := &frameLogger{}
	var ctrl *anim.Controller
	ctrl, err := anim.NewController(cfg, func() {
		ctrl.Render(frames)
		frames.flush()
	})
	if err != nil {
		return 0, fmt.Errorf("controller: %w", err)
	}

	done := 0
	ctrl.OnEvent(func(ev anim.Event, index int) { done++ })

	for done < taps {
		if !ctrl.Animating() {
			ctrl.HandleInteraction()
		}
		select {
		case <-ctx.Done():
			return done, ctx.Err()
		case <-clock:
			ctrl.Advance(ctrl.Scheduler().Period())
		}
	}
	log.Printf("[Headless] %d steps, current node %d, dir %+d", done, ctrl.Chain().Current(), ctrl.Chain().Dir())
	return done, nil
}
