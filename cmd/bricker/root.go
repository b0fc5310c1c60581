package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricker/internal/audio"
	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker"
	"github.com/vovakirdan/bricker/internal/logging"
	"github.com/vovakirdan/bricker/internal/platform/tui"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bricker [bricks-per-row [rows]]",
		Short: "Break bricks in your terminal",
		Long: `Bricker is a brick-breaking arcade game played in the terminal.

Bricks may hide effects: extra pucks, an extra paddle, an extra life
or an explosion that takes the neighbouring bricks with it.

Settings such as difficulty, seed, tick rate and sound live in
bricker.yaml. Set $` + config.EnvConfigPath + ` to use a specific file.

Controls:
  A/Left, D/Right  - Move the paddle
  W                - Win immediately
  P                - Pause
  Q/Ctrl+C         - Quit

Examples:
  bricker
  bricker 10 5`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

// parseGrid reads the optional positional arguments. Zero means "use the config".
func parseGrid(args []string) (perRow, rows int, err error) {
	names := []string{"bricks-per-row", "rows"}
	values := make([]int, 2)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return 0, 0, fmt.Errorf("invalid %s %q: must be a positive integer", names[i], arg)
		}
		values[i] = n
	}
	return values[0], values[1], nil
}

// loadConfig resolves the config file and applies the positional grid arguments.
func loadConfig(args []string) (config.BrickerConfig, error) {
	perRow, rows, err := parseGrid(args)
	if err != nil {
		return config.BrickerConfig{}, err
	}

	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		return cfg, err
	}

	cfg = cfg.WithGrid(perRow, rows)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	player, err := audio.Open(cfg.Audio, logger)
	if err != nil {
		return err
	}
	defer player.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	keys := tui.NewKeyState(tui.DefaultHold)
	window := tui.NewWindow()

	arena, err := bricker.NewArena(cfg, bricker.Options{
		Assets: tui.NewAssets(cfg.Assets),
		Input:  keys,
		Sound:  player,
		Window: window,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Bricks.PerRow, cfg.Bricks.Rows),
		"difficulty", cfg.Difficulty,
		"terminal", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(ctx, tui.Session{
		Arena:  arena,
		Window: window,
		Keys:   keys,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height - 1,
			TickRate: cfg.TickRate,
			Seed:     cfg.Seed,
		},
		Logger: logger,
	})
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
