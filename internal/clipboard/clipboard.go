// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is safe to call multiple times; the
// first result sticks.
func Init() error {
	initOnce.Do(func() {
		log := logger.WithComponent("clipboard")
		if err := clipboard.Init(); err != nil {
			log.Warn("failed to initialize", "error", err)
			initErr = errors.ClipboardUnavailable(err)
			return
		}
		log.Debug("initialized")
	})
	return initErr
}

// ReadText reads text from the clipboard. An empty clipboard is not an
// error.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", nil
	}
	return string(data), nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}
