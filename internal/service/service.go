package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/slmenu/slmenu/internal/config"
	"github.com/slmenu/slmenu/internal/menu"
	"github.com/slmenu/slmenu/internal/storage"
	"github.com/slmenu/slmenu/internal/terminal"
)

// ErrCancelled is returned when the user cancels the menu.
var ErrCancelled = errors.New("selection cancelled")

// Service runs the read-decode-apply-render loop of one selection.
type Service struct {
	config *config.Config
	clip   terminal.Clipboard
	logger *slog.Logger
}

// NewService creates a service. A nil logger discards output.
func NewService(cfg *config.Config, clip terminal.Clipboard, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{config: cfg, clip: clip, logger: logger}
}

// Screen is the terminal geometry at startup.
type Screen struct {
	Width  int
	Height int
}

// Run shows the menu on out and reads keys from in until the user accepts
// or cancels. It returns the text to print on accept and ErrCancelled on
// cancel.
func (s *Service) Run(ctx context.Context, store *storage.CandidateStore, in io.ByteReader, out io.Writer, screen Screen) (string, error) {
	sess := menu.NewSession(store, s.clip, menu.Options{
		Prompt:     s.config.Prompt,
		IgnoreCase: s.config.IgnoreCase,
		Width:      screen.Width,
		Capacity:   s.config.Capacity,
	}, s.logger)
	r := terminal.NewRenderer(out)
	defer r.Clear()

	if err := s.position(r, screen); err != nil {
		return "", err
	}
	if err := r.Draw(sess.Frame()); err != nil {
		return "", fmt.Errorf("failed to draw menu: %w", err)
	}

	dec := terminal.NewDecoder()
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b, err := in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input closed")
				return "", ErrCancelled
			}
			return "", fmt.Errorf("failed to read key: %w", err)
		}

		key, status := dec.Feed(b)
		switch status {
		case terminal.NeedMore:
			continue
		case terminal.Discard:
			s.logger.Debug("discarded input", "byte", b)
		case terminal.Emit:
			switch sess.Apply(key) {
			case menu.Accepted, menu.AcceptedRaw:
				s.logger.Info("selection accepted", "state", sess.State().String())
				return sess.Result(), nil
			case menu.Cancelled:
				s.logger.Info("selection cancelled")
				return "", ErrCancelled
			}
		}

		if err := r.Draw(sess.Frame()); err != nil {
			return "", fmt.Errorf("failed to draw menu: %w", err)
		}
	}
}

func (s *Service) position(r *terminal.Renderer, screen Screen) error {
	var err error
	switch s.config.Position {
	case config.PositionTop:
		err = r.MoveToRow(1)
	case config.PositionBottom:
		err = r.MoveToRow(max(screen.Height, 1))
	}
	return err
}
