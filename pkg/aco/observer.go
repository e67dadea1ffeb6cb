package aco

import (
	"context"
	"log/slog"
)

// SkipEvent describes an entry left out of the decoded list because it is not RGB.
type SkipEvent struct {
	// Index is the entry's position in the table.
	Index int
	// Colorspace is the entry's colorspace word.
	Colorspace uint16
}

// Observer receives diagnostics from a Decoder.
type Observer interface {
	ColorSkipped(event SkipEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event SkipEvent)

func (f ObserverFunc) ColorSkipped(event SkipEvent) {
	f(event)
}

// LogObserver reports skipped entries to logger at warn level.
func LogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(event SkipEvent) {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "skipping non-RGB color",
			slog.Int("index", event.Index),
			slog.Int("colorspace", int(event.Colorspace)),
		)
	})
}
