// SPDX-License-Identifier: MIT
// Package: polyhedra/diag
//
// diag.go — levels, events and the Reporter contract.

package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Level classifies a reported violation.
type Level int

const (
	// LevelInput marks malformed caller input (bad notation, bad seed degree).
	// Recoverable: the caller may reject or re-prompt.
	LevelInput Level = iota

	// LevelDegeneracy marks a geometric degeneracy (polygon with <3 vertices,
	// zero-extent mesh). A zero sentinel is returned.
	LevelDegeneracy

	// LevelIntegrity marks a topological integrity violation (non-manifold
	// mesh, flag cycle that never closes). The generation request is halted.
	LevelIntegrity
)

// String returns a stable lower-case name for logs.
func (l Level) String() string {
	switch l {
	case LevelInput:
		return "input"
	case LevelDegeneracy:
		return "degeneracy"
	case LevelIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// Event is one reported violation.
type Event struct {
	Level    Level
	Function string // reporting function, e.g. "conway.Generate"
	Message  string // formatted, human-readable message
}

// String renders the event as "[function] level: message".
func (e Event) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Function, e.Level, e.Message)
}

// Reporter receives violation events. Implementations must be safe to call
// from the goroutine running the generation and must not panic, except
// Strict which panics on purpose.
type Reporter interface {
	Report(level Level, function, format string, args ...any)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(e Event)

// Report formats the message and invokes f.
func (f ReporterFunc) Report(level Level, function, format string, args ...any) {
	f(Event{Level: level, Function: function, Message: fmt.Sprintf(format, args...)})
}

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(Event) {})

// slogReporter forwards events to a structured logger.
type slogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter returns a Reporter that logs each event at slog.LevelError
// for integrity violations and slog.LevelWarn otherwise. A nil logger means
// slog.Default().
func NewSlogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogReporter{logger: logger}
}

// Report implements Reporter.
func (r *slogReporter) Report(level Level, function, format string, args ...any) {
	lvl := slog.LevelWarn
	if level == LevelIntegrity {
		lvl = slog.LevelError
	}
	r.logger.Log(context.Background(), lvl, fmt.Sprintf(format, args...),
		slog.String("function", function),
		slog.String("level", level.String()),
	)
}

// Recorder stores events in memory. The zero value is ready to use and is
// safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Report implements Reporter.
func (r *Recorder) Report(level Level, function, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Function: function, Message: fmt.Sprintf(format, args...)})
}

// Events returns a copy of all recorded events in report order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// strictReporter forwards to next and then panics on integrity violations.
type strictReporter struct {
	next Reporter
}

// Strict wraps next so that LevelIntegrity events panic after being
// forwarded. Input and degeneracy events are only forwarded.
// A nil next is treated as Discard.
func Strict(next Reporter) Reporter {
	if next == nil {
		next = Discard
	}
	return strictReporter{next: next}
}

// Report implements Reporter.
func (s strictReporter) Report(level Level, function, format string, args ...any) {
	s.next.Report(level, function, format, args...)
	if level == LevelIntegrity {
		panic(Event{Level: level, Function: function, Message: fmt.Sprintf(format, args...)}.String())
	}
}
