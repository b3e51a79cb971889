package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/slmenu/slmenu/internal/config"
	"github.com/slmenu/slmenu/internal/service"
	"github.com/slmenu/slmenu/internal/storage"
	"github.com/slmenu/slmenu/internal/terminal"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if f.Changed("ignore-case") {
		cfg.IgnoreCase = flags.ignoreCase
	}
	if flags.top {
		cfg.Position = config.PositionTop
	}
	if flags.bottom {
		cfg.Position = config.PositionBottom
	}
	if f.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if f.Changed("debug") {
		cfg.Debug = flags.debug
	}
	return cfg, nil
}

// newLogger opens the log file, or discards logs when none is set.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func runMenu(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.ReadCandidates(cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("candidates loaded", "count", store.Len())

	text, err := selectFromTTY(cmd, cfg, store, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// selectFromTTY owns raw mode: it is restored before returning on every
// path, so the result is printed on a sane terminal.
func selectFromTTY(cmd *cobra.Command, cfg *config.Config, store *storage.CandidateStore, logger *slog.Logger) (string, error) {
	tty, err := terminal.OpenTTY(cfg.TTY)
	if err != nil {
		return "", err
	}
	defer tty.Close()

	width, height := tty.Size()
	logger.Debug("terminal size", "width", width, "height", height)

	if err := tty.MakeRaw(); err != nil {
		return "", err
	}
	defer tty.Restore()

	clip := terminal.NewSystemClipboard(cfg.ClipboardFile, logger)
	svc := service.NewService(cfg, clip, logger)
	return svc.Run(cmd.Context(), store, tty, cmd.ErrOrStderr(), service.Screen{Width: width, Height: height})
}
