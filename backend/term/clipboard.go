package term

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"

	"github.com/go-theft-auto/grid"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

var _ grid.ClipboardProvider = (*SystemClipboard)(nil)

// SystemClipboard is a grid.ClipboardProvider backed by the OS clipboard.
type SystemClipboard struct {
	logger *slog.Logger
}

// NewSystemClipboard initializes the OS clipboard. It fails on systems
// without one, e.g. Linux without X11 or Wayland.
func NewSystemClipboard(logger *slog.Logger) (*SystemClipboard, error) {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			clipboardErr = fmt.Errorf("initialize clipboard: %w", err)
		}
	})
	if clipboardErr != nil {
		return nil, clipboardErr
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemClipboard{logger: logger}, nil
}

// SetText implements grid.ClipboardProvider.
func (c *SystemClipboard) SetText(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
	c.logger.Debug("clipboard write", "bytes", len(text))
}
