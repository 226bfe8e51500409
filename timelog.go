// Package timelog exposes colored named loggers and a timer that logs how
// long a piece of work took.
//
//	log := timelog.GetLogger("svc")
//	err := timelog.Track("load index", log, loadIndex)
package timelog

import (
	"timelog/internal/color"
	"timelog/internal/logging"
	"timelog/internal/timer"
)

type (
	Logger   = logging.Logger
	Registry = logging.Registry
	Option   = logging.Option
	Timer    = timer.Timer
	Color    = color.Color
	Mode     = color.Mode
)

var (
	NewRegistry       = logging.NewRegistry
	WithOutput        = logging.WithOutput
	WithLevel         = logging.WithLevel
	WithTimeFormat    = logging.WithTimeFormat
	WithColorMode     = logging.WithColorMode
	NewTimer          = timer.New
	Track             = timer.Track
	Scope             = timer.Scope
	FormatElapsed     = timer.FormatElapsed
	ErrNotStarted     = timer.ErrNotStarted
	ErrAlreadyStarted = timer.ErrAlreadyStarted
	ErrAlreadyStopped = timer.ErrAlreadyStopped
)

const (
	ModeAlways = color.ModeAlways
	ModeAuto   = color.ModeAuto
	ModeNever  = color.ModeNever

	Red     = color.Red
	Green   = color.Green
	Yellow  = color.Yellow
	Blue    = color.Blue
	Magenta = color.Magenta
	Cyan    = color.Cyan
	White   = color.White
	Reset   = color.Reset
)

// GetLogger returns the process-wide logger registered under name.
func GetLogger(name string) *Logger {
	return logging.Get(name)
}
