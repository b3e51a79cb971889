package terminal

import (
	"errors"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
)

// Clipboard supplies text for the paste command. Failures are reported as
// an empty result, never as an error.
type Clipboard interface {
	Read() []byte
}

// SystemClipboard reads the desktop clipboard and falls back to a plain
// file shared with other console tools.
type SystemClipboard struct {
	// FallbackFile is read when the system clipboard is unavailable.
	FallbackFile string
	Logger       *slog.Logger

	readAll func() (string, error)
}

// NewSystemClipboard returns a clipboard backed by atotto/clipboard.
func NewSystemClipboard(fallbackFile string, logger *slog.Logger) *SystemClipboard {
	return &SystemClipboard{
		FallbackFile: fallbackFile,
		Logger:       logger,
		readAll:      readSystemClipboard,
	}
}

var errNoClipboard = errors.New("no clipboard utility available")

func readSystemClipboard() (string, error) {
	if clipboard.Unsupported {
		return "", errNoClipboard
	}
	return clipboard.ReadAll()
}

func (c *SystemClipboard) Read() []byte {
	if c.readAll != nil {
		text, err := c.readAll()
		if err == nil && text != "" {
			return []byte(text)
		}
		if err != nil {
			c.logger().Debug("system clipboard unavailable", "err", err)
		}
	}
	if c.FallbackFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.FallbackFile)
	if err != nil {
		c.logger().Debug("clipboard file unavailable", "path", c.FallbackFile, "err", err)
		return nil
	}
	return data
}

func (c *SystemClipboard) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
