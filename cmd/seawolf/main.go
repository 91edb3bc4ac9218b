// cmd/seawolf/main.go
//
// This is the entry point for the Sea Wolf CLI.
// Running `seawolf` with no subcommand launches the game in the terminal.
//
// Flow:
// 1. Load .seawolf/config.yaml from the workspace (or --config)
// 2. Build the file logger under .seawolf/logs
// 3. Hand a fresh session to the TUI and block until the player quits

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/logging"
	"github.com/kingrea/seawolf/internal/tui"
)

// seedEnv fixes the generation seed when --seed is not given.
const seedEnv = "SEAWOLF_SEED"

type cliOptions struct {
	verbose    bool
	configPath string
	workspace  string
	seed       uint64

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "seawolf",
		Short: "Sea Wolf - a timed microbial cleanup puzzle",
		Long: `Sea Wolf is a single-player puzzle played in the terminal.

Three contaminated sites each need a treatment of three microbes whose average
attributes land inside the site's target ranges, with the desired trait present
and the undesired trait absent. The whole expedition runs on one clock.

Run without arguments to start playing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: <workspace>/.seawolf/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Generation seed (or set "+seedEnv+")")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start an expedition in the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	playCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Generation seed (or set "+seedEnv+")")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create .seawolf with the default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitDir(opts.cfg.ProjectDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", opts.cfg.ConfigPath())
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, newGenerateCmd(opts), initCmd)
	return rootCmd
}

// loadConfig resolves the workspace and reads its config. An explicit
// --config file replaces the workspace file.
func loadConfig(opts *cliOptions) (*config.Config, error) {
	dir := strings.TrimSpace(opts.workspace)
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(opts.configPath); path != "" {
		game, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg.Game = game
	}
	return cfg, nil
}

// resolveSeed prefers --seed, then SEAWOLF_SEED. Nil means draw a random seed.
func resolveSeed(cmd *cobra.Command, opts *cliOptions) (*uint64, error) {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed := opts.seed
		return &seed, nil
	}
	raw := strings.TrimSpace(os.Getenv(seedEnv))
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", seedEnv, err)
	}
	return &seed, nil
}

func runPlay(cmd *cobra.Command, opts *cliOptions) error {
	cfg := opts.cfg
	if err := config.InitDir(cfg.ProjectDir); err != nil {
		return fmt.Errorf("initialize %s: %w", config.Dir, err)
	}
	logger, err := logging.New(cfg, opts.verbose)
	if err != nil {
		return err
	}
	opts.logger = logger

	seed, err := resolveSeed(cmd, opts)
	if err != nil {
		return err
	}
	appOpts := []tui.AppOption{tui.WithLogger(logger)}
	if seed != nil {
		appOpts = append(appOpts, tui.WithSeed(*seed))
	}
	app, err := tui.NewApp(cfg, appOpts...)
	if err != nil {
		return err
	}
	logger.Info("tui starting", zap.String("workspace", cfg.ProjectDir), zap.String("session", app.Session().ID()))

	// Run blocks until the player quits
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
