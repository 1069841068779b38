// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/logger"
)

// Writer is the copy primitive copy actions depend on
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

// WriteText calls f
func (f WriterFunc) WriteText(text string) error { return f(text) }

// System writes to the OS clipboard. It prefers the native clipboard and
// falls back to the platform copy utilities (pbcopy, xclip, xsel, wl-copy)
// when the native one cannot initialize, e.g. without cgo or a display.
type System struct {
	once      sync.Once
	native    bool
	initError error
}

// NewSystem creates a System writer. Initialization is deferred to the
// first write.
func NewSystem() *System {
	return &System{}
}

func (s *System) init() {
	log := logger.WithComponent("clipboard")
	if err := clipboard.Init(); err != nil {
		s.initError = err
		log.Debug("native clipboard unavailable, using fallback", "error", err)
		return
	}
	s.native = true
	log.Debug("native clipboard initialized")
}

// WriteText writes text to the clipboard
func (s *System) WriteText(text string) error {
	s.once.Do(s.init)
	log := logger.WithComponent("clipboard")

	if s.native {
		clipboard.Write(clipboard.FmtText, []byte(text))
		log.Debug("wrote text", "bytes", len(text), "backend", "native")
		return nil
	}

	if atotto.Unsupported {
		return perrors.ClipboardUnavailable(fmt.Errorf("native: %v; no copy utility found", s.initError))
	}
	if err := atotto.WriteAll(text); err != nil {
		return perrors.ClipboardUnavailable(err)
	}
	log.Debug("wrote text", "bytes", len(text), "backend", "fallback")
	return nil
}
