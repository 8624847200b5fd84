// Command mazepath finds the shortest path through a maze with breadth-first
// search and animates the search in the terminal.
//
// Usage:
//
//	mazepath [-maze file] [-delay 200ms] [-max-steps n] [-renderer tty|text|none] [-timeout d] [-env .env]
//
// Settings come from the MAZE_* environment variables (see package config),
// an optional .env file, and finally these flags. Exit status is 0 when a
// path is found, 2 when none exists and 1 for any other failure.
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

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
	"github.com/katalvlaran/mazepath/render"
)

const (
	exitFound  = 0
	exitFailed = 1
	exitNoPath = 2
)

// newScreen creates the screen for the tty renderer.
var newScreen = tcell.NewScreen

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	runID := uuid.NewString()
	logger := log.New(stderr, fmt.Sprintf("[mazepath %s] ", runID[:8]), log.LstdFlags|log.Lmsgprefix)

	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		logger.Printf("[APP] [ERROR] %v", err)
		return exitFailed
	}

	grid, err := loadGrid(cfg.MazeFile)
	if err != nil {
		logger.Printf("[APP] [ERROR] %v", err)
		return exitFailed
	}
	logger.Printf("[APP] [INFO] maze %dx%d loaded (%s), renderer=%s delay=%v",
		grid.Rows(), grid.Cols(), mazeSource(cfg.MazeFile), cfg.Renderer, cfg.Delay())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := solve(ctx, cfg, grid, stdout, logger)
	switch {
	case errors.Is(err, pathfind.ErrNoPathFound):
		logger.Printf("[APP] [WARN] %v", err)
		explainNoPath(grid, logger)
		fmt.Fprintln(stdout, "no path")
		return exitNoPath
	case err != nil:
		logger.Printf("[APP] [ERROR] search failed: %v", err)
		return exitFailed
	}

	logger.Printf("[APP] [INFO] path found: %d cells, %d moves, %d steps, %d cells visited",
		len(res.Path), res.Moves(), res.Steps, res.Visited)
	fmt.Fprintf(stdout, "path: %d cells, %d moves\n%v\n", len(res.Path), res.Moves(), res.Path)
	return exitFound
}

// loadConfig parses flags, loads the env file they name, and lets every
// explicitly set flag override the loaded value.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional dotenv file with MAZE_* settings")
	mazeFile := fs.String("maze", "", "maze text file (default: built-in 9x9 maze)")
	delay := fs.Duration("delay", def.StepDelay, "pause after each search step")
	maxSteps := fs.Int("max-steps", def.MaxSteps, "abort after this many steps (0 = unbounded)")
	renderer := fs.String("renderer", def.Renderer, "tty, text or none")
	timeout := fs.Duration("timeout", def.Timeout, "abort the whole run after this long (0 = never)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maze":
			cfg.MazeFile = *mazeFile
		case "delay":
			cfg.StepDelay = *delay
			cfg.StepDelaySet = true
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "renderer":
			cfg.Renderer = *renderer
		case "timeout":
			cfg.Timeout = *timeout
		}
	})
	return cfg, cfg.Validate()
}

func loadGrid(path string) (*maze.Grid, error) {
	if path == "" {
		return maze.Default(), nil
	}
	return maze.LoadFile(path)
}

func mazeSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// solve runs the search with the configured sink attached.
func solve(ctx context.Context, cfg config.Config, grid *maze.Grid, stdout io.Writer, logger *log.Logger) (*pathfind.Result, error) {
	opts := []pathfind.Option{
		pathfind.WithContext(ctx),
		pathfind.WithDelay(cfg.Delay()),
		pathfind.WithMaxSteps(cfg.MaxSteps),
	}

	switch cfg.Renderer {
	case config.RendererText:
		opts = append(opts, pathfind.WithOnStep(render.StepFunc(render.NewText(stdout), grid)))
	case config.RendererTTY:
		return solveOnTerminal(ctx, grid, opts, logger)
	}
	return pathfind.FindPath(grid, opts...)
}

// solveOnTerminal animates the search full-screen. Esc, Ctrl-C or q abort
// the search; once it ends, the final frame stays up until a key is pressed.
func solveOnTerminal(ctx context.Context, grid *maze.Grid, opts []pathfind.Option, logger *log.Logger) (*pathfind.Result, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	term, err := render.NewTerminal(screen, render.DefaultTheme())
	if err != nil {
		return nil, err
	}
	defer term.Close()

	searchCtx, cancel := context.WithCancel(ctx)
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		for {
			ev, err := term.WaitForKey(searchCtx)
			if err != nil {
				return
			}
			if render.IsQuit(ev) {
				cancel()
				return
			}
		}
	}()

	opts = append(opts,
		pathfind.WithContext(searchCtx),
		pathfind.WithOnStep(render.StepFunc(term, grid)),
	)
	res, err := pathfind.FindPath(grid, opts...)
	cancel()
	<-watching

	// Skip the final wait when the run was aborted or the maze never fit.
	if ctx.Err() == nil && !errors.Is(err, context.Canceled) && !errors.Is(err, render.ErrScreenTooSmall) {
		if _, werr := term.WaitForKey(ctx); werr != nil {
			logger.Printf("[APP] [WARN] waiting for key: %v", werr)
		}
	}
	return res, err
}

// explainNoPath logs whether Start and End are separated into distinct regions.
func explainNoPath(grid *maze.Grid, logger *log.Logger) {
	start, end, err := grid.Endpoints()
	if err != nil {
		return
	}
	for _, comp := range grid.Components() {
		if containsCell(comp, start) {
			logger.Printf("[APP] [INFO] start %v reaches only %d cells; end %v lies in another region",
				start, len(comp), end)
			return
		}
	}
}

func containsCell(cells []maze.Cell, c maze.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
