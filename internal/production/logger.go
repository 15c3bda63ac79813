package production

import (
	"log/slog"

	"github.com/comalice/memsemx/internal/core"
)

// SlogLogger adapts a *slog.Logger to the engine's core.Logger interface.
// The engine's key/value args pass straight through.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger creates a SlogLogger. A nil logger uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

var _ core.Logger = (*SlogLogger)(nil)
