// Package main provides the CLI entrypoint for timequiz.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/timequiz/internal/config"
	"github.com/verte-zerg/timequiz/internal/generator"
	"github.com/verte-zerg/timequiz/internal/model"
	"github.com/verte-zerg/timequiz/internal/quiz"
	"github.com/verte-zerg/timequiz/internal/stats"
	"github.com/verte-zerg/timequiz/internal/tui"
)

const defaultLogLevel = "warn"

// quizFlags holds the root command's flag values.
type quizFlags struct {
	mode     string
	seed     int64
	tui      bool
	logLevel string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &quizFlags{}
	rootCmd := &cobra.Command{
		Use:           "timequiz",
		Short:         "Clock arithmetic quiz",
		Long:          "Practice adding and subtracting hours and minutes on a 24-hour clock.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuizCmd(cmd, flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.mode, "mode", "", "question mode: add, subtract or random (default: ask)")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for a reproducible question sequence (0 = random)")
	rootCmd.Flags().BoolVar(&flags.tui, "tui", false, "use the full-screen interface")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", defaultLogLevel, "diagnostics level: debug, info, warn or error")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, flags *quizFlags) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &flags.mode, fileCfg.Quiz.Mode)
	applyInt64Config(cmd, "seed", &flags.seed, fileCfg.Quiz.Seed)
	applyBoolConfig(cmd, "tui", &flags.tui, fileCfg.Quiz.TUI)
	applyStringConfig(cmd, "log-level", &flags.logLevel, fileCfg.Log.Level)

	logger, err := newLogger(cmd.ErrOrStderr(), flags.logLevel)
	if err != nil {
		return err
	}

	mode, err := model.ParseMode(flags.mode)
	if err != nil {
		return fmt.Errorf("invalid --mode value: %w", err)
	}
	cfg := model.Config{
		Mode: mode,
		Seed: flags.seed,
		TUI:  flags.tui,
	}
	logger.Debug("starting quiz", "mode", cfg.Mode, "seed", cfg.Seed, "tui", cfg.TUI)

	gen := newGenerator(cfg.Seed)
	clk := clock.New()

	if cfg.TUI {
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			return runTUI(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, gen, clk, logger)
		}
		logger.Warn("--tui needs a terminal; falling back to the line interface")
	}

	session := quiz.NewConsole(quiz.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Mode:      cfg.Mode,
		Generator: gen,
		Clock:     clk,
		Logger:    logger,
	})
	return session.Run()
}

func runTUI(out, errOut io.Writer, cfg model.Config, gen *generator.Generator, clk clock.Clock, logger *log.Logger) error {
	flushLogs := holdLogs(logger, errOut)
	m := tui.NewModel(cfg.Mode, gen, clk, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := program.Run()
	if err := flushLogs(); err != nil {
		return fmt.Errorf("failed to write logs: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	if _, err := fmt.Fprintln(out, "🦊 Thanks for playing!"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSummary(out, m.Summary()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// holdLogs buffers logger output while the alt screen is active. The returned
// func writes the buffered lines to w and restores the logger's output.
func holdLogs(logger *log.Logger, w io.Writer) func() error {
	var held bytes.Buffer
	logger.SetOutput(&held)
	return func() error {
		logger.SetOutput(w)
		_, err := held.WriteTo(w)
		return err
	}
}

func newGenerator(seed int64) *generator.Generator {
	if seed == 0 {
		return generator.New()
	}
	return generator.NewSeeded(seed)
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level value: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "timequiz",
	}), nil
}

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# timequiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# mode = "random"         # add, subtract or random; unset asks at startup
# seed = 0                # Fixed question sequence (0 = random)
# tui = false             # Full-screen interface

[log]
# level = %q           # debug, info, warn or error
`,
		defaultLogLevel,
	)
}
