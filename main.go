package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"puzzlerooms/assets"
	"puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/audio/sound"
	"puzzlerooms/pkg/game/config"
	"puzzlerooms/pkg/game/devtools"
	"puzzlerooms/pkg/game/gameplay"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/renderer"
	ebitenrenderer "puzzlerooms/pkg/game/renderer/ebiten"
	"puzzlerooms/pkg/game/renderer/tui"
	"puzzlerooms/pkg/game/state"
	"puzzlerooms/pkg/server"
)

// maxScriptTicks bounds a "tick" line so a script cannot spin forever
const maxScriptTicks = 100000

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "puzzlerooms:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, os.Getenv)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gotext.Configure(cfg.LocalesDir, cfg.Lang, "default")

	grid, err := loadGrid(cfg.MapPath)
	if err != nil {
		return err
	}

	ui := cfg.ResolveUI(input.IsInteractive())
	player := newAudio(cfg.Audio, ui, log)
	defer func() {
		if sm, ok := player.(*sound.SoundManager); ok {
			sm.Cleanup()
		}
	}()

	g, err := gameplay.BuildGame(grid, puzzle.DefaultLayout(), gameplay.Options{
		Audio: player,
		Log:   log,
		Speed: float32(cfg.Speed),
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"ui": ui, "map": cfg.MapPath}).Info("starting")

	switch ui {
	case config.UITUI:
		view := tui.New(os.Stdout)
		renderer.SetRenderer(view)
		return tui.Run(g, view, cfg.TickRate)
	case config.UIGUI:
		win := ebitenrenderer.New(g)
		renderer.SetRenderer(win)
		return win.Run()
	case config.UIServe:
		return serve(g, cfg, log)
	default:
		src := io.Reader(os.Stdin)
		if cfg.Script != "-" {
			f, err := os.Open(cfg.Script)
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
		}
		return runScript(g, src, os.Stdout, cfg.Speed, cfg.Dump)
	}
}

func newLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}

func loadGrid(path string) (*world.Grid, error) {
	if path == "" {
		return world.LoadMapString(assets.DefaultMap)
	}
	return world.LoadMapFile(path)
}

// newAudio returns the speaker when audio is enabled and the frontend is local
func newAudio(enabled bool, ui string, log logrus.FieldLogger) audio.Player {
	if !enabled || ui == config.UIScript || ui == config.UIServe {
		return audio.Silent{}
	}
	sm := sound.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
		return audio.Silent{}
	}
	return sm
}

func serve(g *state.Game, cfg *config.Config, log logrus.FieldLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(g, server.Options{TickRate: cfg.TickRate, Log: log})
	go srv.Loop(ctx)

	httpServer := &http.Server{Addr: cfg.Addr, Handler: srv}
	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	log.WithField("addr", cfg.Addr).Info("listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// runScript reads commands (see input.ParseCommand) and prints each new
// message as plain text. A run started by a script is ticked until it settles,
// one cell per tick.
func runScript(g *state.Game, src io.Reader, out io.Writer, speed float64, dump bool) error {
	dt := float32(1 / speed)
	printed := printMessages(out, g, 0)

	reader := input.NewScriptReader(src)
	for !g.QuitRequested {
		cmd, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if cmd.Intent.Action != input.ActionNone {
			gameplay.ProcessIntent(g, cmd.Intent)
			if cmd.Intent.Action == input.ActionCommitRun {
				if _, err := gameplay.RunUntilSettled(g, dt, maxScriptTicks); err != nil {
					return err
				}
			}
		}
		for i := 0; i < cmd.Ticks && i < maxScriptTicks; i++ {
			if _, err := gameplay.Tick(g, dt); err != nil {
				return err
			}
		}
		printed = printMessages(out, g, printed)
	}

	fmt.Fprintf(out, "mode: %s  puzzle: %v  super pickups left: %d\n",
		g.Mode, g.CurrentPuzzle, g.Puzzles.Super().PickupCount)

	if dump {
		path, err := devtools.DumpMapToFile(g, "")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "map dumped to", path)
	}
	return nil
}

// printMessages prints the messages logged since the last call. seen is the
// total returned by the previous call.
func printMessages(out io.Writer, g *state.Game, seen int) int {
	total := g.MessageCount()
	start := len(g.Messages) - (total - seen)
	if start < 0 {
		start = 0
	}
	for _, msg := range g.Messages[start:] {
		fmt.Fprintln(out, renderer.FormatText("%s", msg))
	}
	return total
}
