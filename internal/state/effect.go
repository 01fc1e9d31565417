package state

import (
	"context"
	"log/slog"
)

// Record is one diagnostic line produced by a transition.
type Record struct {
	Level slog.Level
	Msg   string
	Attrs []any
}

// Effect carries what a transition wants the outside world to know.
type Effect struct {
	Records []Record
	Status  string // Transient status-line text; empty means none
}

// Empty reports whether the effect carries nothing.
func (e Effect) Empty() bool {
	return len(e.Records) == 0 && e.Status == ""
}

func (e Effect) with(level slog.Level, msg string, attrs ...any) Effect {
	e.Records = append(e.Records, Record{Level: level, Msg: msg, Attrs: attrs})
	return e
}

func info(msg string, attrs ...any) Effect {
	return Effect{}.with(slog.LevelInfo, msg, attrs...)
}

func debug(msg string, attrs ...any) Effect {
	return Effect{}.with(slog.LevelDebug, msg, attrs...)
}

// Log writes every record to l.
func (e Effect) Log(l *slog.Logger) {
	for _, r := range e.Records {
		l.Log(context.Background(), r.Level, r.Msg, r.Attrs...)
	}
}
