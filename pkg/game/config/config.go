// Package config reads the command line and environment into the settings the
// game is started with.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment override, e.g. PUZZLEROOMS_UI=serve
const EnvPrefix = "PUZZLEROOMS_"

// Frontends
const (
	UIAuto   = "auto"
	UITUI    = "tui"
	UIGUI    = "gui"
	UIServe  = "serve"
	UIScript = "script"
)

// Config is everything main needs to build and run a game
type Config struct {
	// MapPath is a map file; empty means the embedded default map
	MapPath string
	UI      string
	// Addr is the listen address for the server frontend
	Addr string
	// Script is read by the script frontend; "-" is stdin
	Script string

	Lang       string
	LocalesDir string

	Audio bool
	// Speed is the walking speed in cells per second
	Speed float64
	// TickRate is simulation ticks per second for the server and terminal frontends
	TickRate int

	LogLevel logrus.Level
	LogFile  string

	// Dump writes a map dump after the script frontend finishes
	Dump bool
}

// Default returns the settings used when nothing is given
func Default() *Config {
	return &Config{
		UI:         UIAuto,
		Addr:       ":8080",
		Script:     "-",
		Lang:       "en_GB",
		LocalesDir: "locales",
		Audio:      true,
		Speed:      4,
		TickRate:   30,
		LogLevel:   logrus.WarnLevel,
	}
}

// Load parses args (without the program name). Environment variables named
// EnvPrefix + the upper-cased flag name with dashes as underscores provide
// defaults; flags given on the command line win.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	logLevel := cfg.LogLevel.String()

	fs := flag.NewFlagSet("puzzlerooms", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.MapPath, "map", cfg.MapPath, "map file to load (default: embedded map)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: auto, tui, gui, serve or script")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for -ui serve")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "command script for -ui script (- for stdin)")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	fs.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "directory holding <lang>/LC_MESSAGES/default.po")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play sound cues")
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "walking speed in cells per second")
	fs.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	fs.StringVar(&logLevel, "log-level", logLevel, "diagnostic log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write diagnostics to this file instead of stderr")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "write map.txt when a script finishes")

	if getenv != nil {
		var envErr error
		fs.VisitAll(func(f *flag.Flag) {
			name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if v := getenv(name); v != "" {
				if err := f.Value.Set(v); err != nil && envErr == nil {
					envErr = fmt.Errorf("%s: %w", name, err)
				}
			}
		})
		if envErr != nil {
			return nil, envErr
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && cfg.MapPath == "" {
		cfg.MapPath = fs.Arg(0)
	}

	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = lvl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flag parsing cannot
func (c *Config) Validate() error {
	switch c.UI {
	case UIAuto, UITUI, UIGUI, UIServe, UIScript:
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick-rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// ResolveUI picks the frontend for UIAuto: the terminal UI when attached to a
// terminal, otherwise the script runner
func (c *Config) ResolveUI(interactive bool) string {
	if c.UI != UIAuto {
		return c.UI
	}
	if interactive {
		return UITUI
	}
	return UIScript
}
