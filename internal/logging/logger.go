// Package logging hands out named console loggers with a fixed colored
// layout. Loggers live in a Registry for the whole process; Get uses the
// shared Default registry.
package logging

import (
	"io"
	"os"
	"sort"
	"sync"

	clog "github.com/charmbracelet/log"

	"timelog/internal/color"
)

// DefaultTimeFormat is used for the timestamp column unless overridden.
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

// Logger is a named charmbracelet logger. The embedded *log.Logger carries
// the usual Info/Infof/Warn/... methods.
type Logger struct {
	*clog.Logger

	name  string
	out   io.Writer
	color bool
}

// Name returns the registry key the logger was created under.
func (l *Logger) Name() string { return l.name }

// Output returns the single writer records are sent to.
func (l *Logger) Output() io.Writer { return l.out }

// Colored reports whether the logger decorates its output.
func (l *Logger) Colored() bool { return l.color }

// Paint colors s for inclusion in a message, or returns it unchanged when
// the logger writes plain text.
func (l *Logger) Paint(c color.Color, s string) string {
	if !l.color {
		return s
	}
	return color.Paint(c, s)
}

// Option configures loggers created by a Registry.
type Option func(*options)

type options struct {
	out        io.Writer
	level      clog.Level
	timeFormat string
	mode       color.Mode
}

// WithOutput sets the writer new loggers write to. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the minimum level of new loggers. Defaults to info.
func WithLevel(level clog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithTimeFormat sets the timestamp layout of new loggers.
func WithTimeFormat(layout string) Option {
	return func(o *options) { o.timeFormat = layout }
}

// WithColorMode controls decoration of new loggers. Defaults to
// color.ModeAlways.
func WithColorMode(m color.Mode) Option {
	return func(o *options) { o.mode = m }
}

// Registry maps names to configured loggers. A name is configured once, on
// its first Get, and the logger is kept until the process exits.
type Registry struct {
	mu      sync.Mutex
	opts    options
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := options{
		out:        os.Stderr,
		level:      clog.InfoLevel,
		timeFormat: DefaultTimeFormat,
		mode:       color.ModeAlways,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{opts: o, loggers: map[string]*Logger{}}
}

// Get returns the logger registered under name, creating and configuring it
// on first use. Repeated calls return the same *Logger.
func (r *Registry) Get(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := r.build(name)
	r.loggers[name] = l
	return l
}

// Names lists registered logger names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for n := range r.loggers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) build(name string) *Logger {
	o := r.opts
	cl := clog.NewWithOptions(o.out, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      o.timeFormat,
		Level:           o.level,
		Prefix:          name,
	})
	cl.SetColorProfile(o.mode.Profile(o.out))
	cl.SetStyles(styles())
	return &Logger{
		Logger: cl,
		name:   name,
		out:    o.out,
		color:  o.mode.Enabled(o.out),
	}
}

// styles lays out a record as white timestamp, green level, yellow name and
// white message.
func styles() *clog.Styles {
	s := clog.DefaultStyles()
	s.Timestamp = s.Timestamp.Foreground(color.White.Lipgloss())
	s.Prefix = s.Prefix.Foreground(color.Yellow.Lipgloss())
	s.Message = s.Message.Foreground(color.White.Lipgloss())
	for lvl, st := range s.Levels {
		s.Levels[lvl] = st.Foreground(color.Green.Lipgloss())
	}
	return s
}

// Default is the process-wide registry, writing to standard error.
var Default = NewRegistry()

// Get returns the named logger from the Default registry.
func Get(name string) *Logger {
	return Default.Get(name)
}
