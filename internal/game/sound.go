package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/diag-rot-line/internal/anim"
	"github.com/iburimskiy/diag-rot-line/internal/config"
)

// soundPlayer plays a short click whenever a node finishes its step.
type soundPlayer struct {
	cfg config.SoundConfig
	sr  beep.SampleRate
}

func newSoundPlayer(cfg config.SoundConfig) (*soundPlayer, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &soundPlayer{cfg: cfg, sr: sr}, nil
}

// Play queues the click for ev. committed is the settled progress of the
// node that finished, 1 after a forward step and 0 after a backward one.
func (p *soundPlayer) Play(ev anim.Event, committed float64) {
	freq := toneFrequency(p.cfg, ev, committed)
	if freq <= 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: tone(p.sr, freq, p.cfg.Duration),
		Base:     2,
		Volume:   p.cfg.Volume,
	})
}

func toneFrequency(cfg config.SoundConfig, ev anim.Event, committed float64) float64 {
	switch ev {
	case anim.BoundaryReached:
		return cfg.BoundaryTone
	case anim.Settled:
		if committed >= 1 {
			return cfg.ForwardTone
		}
		return cfg.BackwardTone
	default:
		return 0
	}
}

// tone is a sine wave of freq Hz lasting d, fading out linearly.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	wave := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := clamp01(1 - float64(pos)/float64(total))
			v := math.Sin(step*float64(pos)) * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, wave)
}
