package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds every constant of the sketch. It is decoded once at startup
// and passed by value; nothing mutates it afterwards.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Chain     ChainConfig     `yaml:"chain"`
	Animation AnimationConfig `yaml:"animation"`
	Drawing   DrawingConfig   `yaml:"drawing"`
	Sound     SoundConfig     `yaml:"sound"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ChainConfig sizes the row: Nodes nodes, each drawing Lines segments.
type ChainConfig struct {
	Nodes int `yaml:"nodes"`
	Lines int `yaml:"lines"`
}

type AnimationConfig struct {
	TickPeriod  time.Duration `yaml:"tickPeriod"`
	HistorySize int           `yaml:"historySize"`
}

// DrawingConfig controls node geometry. The stroke width is
// min(w, h) / StrokeFactor and the segment length is gap / SizeFactor.
type DrawingConfig struct {
	StrokeFactor float64 `yaml:"strokeFactor"`
	SizeFactor   float64 `yaml:"sizeFactor"`
	ForeColor    string  `yaml:"foreColor"`
	BackColor    string  `yaml:"backColor"`

	fore color.RGBA
	back color.RGBA
}

// Fore returns the parsed foreground colour.
func (d DrawingConfig) Fore() color.RGBA { return d.fore }

// Back returns the parsed background colour.
func (d DrawingConfig) Back() color.RGBA { return d.back }

type SoundConfig struct {
	Enabled      bool          `yaml:"enabled"`
	SampleRate   int           `yaml:"sampleRate"`
	Duration     time.Duration `yaml:"duration"`
	Volume       float64       `yaml:"volume"` // log2 gain passed to effects.Volume
	ForwardTone  float64       `yaml:"forwardTone"`
	BackwardTone float64       `yaml:"backwardTone"`
	BoundaryTone float64       `yaml:"boundaryTone"`
}

// Default returns the configuration compiled into the binary.
func Default() (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Config{}, fmt.Errorf("embedded default config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, fills unset fields and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1024
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 512
	}
	if cfg.Animation.TickPeriod == 0 {
		cfg.Animation.TickPeriod = 50 * time.Millisecond
	}
	if cfg.Animation.HistorySize == 0 {
		cfg.Animation.HistorySize = 16
	}
	if cfg.Drawing.ForeColor == "" {
		cfg.Drawing.ForeColor = "green"
	}
	if cfg.Drawing.BackColor == "" {
		cfg.Drawing.BackColor = "#BDBDBD"
	}
	if cfg.Sound.SampleRate == 0 {
		cfg.Sound.SampleRate = 44100
	}
	if cfg.Sound.Duration == 0 {
		cfg.Sound.Duration = 40 * time.Millisecond
	}
}

func validate(cfg *Config) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Chain.Nodes < 1 {
		return fmt.Errorf("chain.nodes = %d, must be >= 1", cfg.Chain.Nodes)
	}
	if cfg.Chain.Lines < 1 {
		return fmt.Errorf("chain.lines = %d, must be >= 1", cfg.Chain.Lines)
	}
	if cfg.Animation.TickPeriod < 0 {
		return fmt.Errorf("animation.tickPeriod = %v, must be positive", cfg.Animation.TickPeriod)
	}
	if cfg.Animation.HistorySize < 0 {
		return fmt.Errorf("animation.historySize = %d, must be positive", cfg.Animation.HistorySize)
	}
	if cfg.Drawing.StrokeFactor <= 0 || cfg.Drawing.SizeFactor <= 0 {
		return fmt.Errorf("drawing factors must be positive (stroke %v, size %v)",
			cfg.Drawing.StrokeFactor, cfg.Drawing.SizeFactor)
	}

	var err error
	if cfg.Drawing.fore, err = ParseColor(cfg.Drawing.ForeColor); err != nil {
		return fmt.Errorf("drawing.foreColor: %w", err)
	}
	if cfg.Drawing.back, err = ParseColor(cfg.Drawing.BackColor); err != nil {
		return fmt.Errorf("drawing.backColor: %w", err)
	}

	if cfg.Sound.Enabled {
		if cfg.Sound.SampleRate < 0 || cfg.Sound.Duration < 0 {
			return fmt.Errorf("sound sample rate and duration must be positive")
		}
		if cfg.Sound.ForwardTone <= 0 || cfg.Sound.BackwardTone <= 0 || cfg.Sound.BoundaryTone <= 0 {
			return fmt.Errorf("sound tones must be positive frequencies")
		}
	}
	return nil
}

// ParseColor accepts a CSS colour name ("green") or a #RRGGBB / #RGB hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown colour name %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("malformed hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
