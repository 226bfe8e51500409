// Package timer measures a unit of work and logs when it starts and how long
// it took.
package timer

import (
	"errors"
	"fmt"
	"time"

	"timelog/internal/color"
	"timelog/internal/logging"
)

// DefaultLoggerName is the registry name used when no logger is supplied.
const DefaultLoggerName = "Timer"

var (
	ErrNotStarted     = errors.New("timer not started")
	ErrAlreadyStarted = errors.New("timer already started")
	ErrAlreadyStopped = errors.New("timer already stopped")
)

// Timer logs a start line on Start and a "done" line with the elapsed time
// on Stop. A Timer is single-use and not safe for concurrent use.
type Timer struct {
	label   string
	logger  *logging.Logger
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// New creates a timer for the given label. A nil logger falls back to the
// "Timer" logger of the default registry. Nothing is logged until Start.
func New(label string, logger *logging.Logger) *Timer {
	if logger == nil {
		logger = logging.Get(DefaultLoggerName)
	}
	return &Timer{label: label, logger: logger}
}

// Label returns the description of the timed work.
func (t *Timer) Label() string { return t.label }

// Elapsed returns the duration recorded by Stop, or zero before that.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Start records the start instant and logs "<label>... ".
func (t *Timer) Start() error {
	if !t.start.IsZero() {
		return fmt.Errorf("%w: %q", ErrAlreadyStarted, t.label)
	}
	t.start = time.Now()
	t.logger.Info(t.logger.Paint(color.Cyan, t.label+"... "))
	return nil
}

// Stop computes the elapsed time since Start and logs
// "<label> done. Used: N.Ns.".
func (t *Timer) Stop() (time.Duration, error) {
	switch {
	case t.start.IsZero():
		return 0, fmt.Errorf("%w: %q", ErrNotStarted, t.label)
	case t.stopped:
		return t.elapsed, fmt.Errorf("%w: %q", ErrAlreadyStopped, t.label)
	}
	t.elapsed = time.Since(t.start)
	t.stopped = true
	l := t.logger
	l.Info(l.Paint(color.Cyan, t.label) + " " +
		l.Paint(color.White, "done. Used: ") +
		l.Paint(color.Yellow, FormatElapsed(t.elapsed)) +
		l.Paint(color.White, "."))
	return t.elapsed, nil
}

// String formats the timer as "<label>: N.Ns".
func (t *Timer) String() string {
	if t.label == "" {
		return FormatElapsed(t.elapsed)
	}
	return t.label + ": " + FormatElapsed(t.elapsed)
}

// FormatElapsed renders d in seconds with one fractional digit, e.g. "2.3s".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Track times fn under label. The done line is logged on every exit path,
// panics included, and fn's error is returned unchanged.
func Track(label string, logger *logging.Logger, fn func() error) error {
	t := New(label, logger)
	_ = t.Start() // fresh timer
	defer func() { _, _ = t.Stop() }()
	return fn()
}

// Scope starts a timer and returns the function that stops it, for use as
//
//	defer timer.Scope("load", lg)()
func Scope(label string, logger *logging.Logger) func() {
	t := New(label, logger)
	_ = t.Start()
	return func() { _, _ = t.Stop() }
}
