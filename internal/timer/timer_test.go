package timer

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timelog/internal/color"
	"timelog/internal/logging"
	tu "timelog/internal/testutil"
)

var doneRe = regexp.MustCompile(`done\. Used: (\d+\.\d)s\.`)

func newLogger(t *testing.T) (*logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	reg := logging.NewRegistry(logging.WithOutput(&buf))
	return reg.Get("test_timer"), &buf
}

func usedSeconds(t *testing.T, line string) float64 {
	t.Helper()
	m := doneRe.FindStringSubmatch(line)
	require.Len(t, m, 2, "no elapsed time in %q", line)
	v, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	return v
}

func TestTimer_StartStop(t *testing.T) {
	lg, buf := newLogger(t)

	tm := New("load", lg)
	assert.Empty(t, buf.String(), "construction must not log")

	require.NoError(t, tm.Start())
	time.Sleep(50 * time.Millisecond)
	d, err := tm.Stop()
	require.NoError(t, err)
	assert.Equal(t, d, tm.Elapsed())

	out := buf.String()
	assert.True(t, tu.HasColor(out))
	assert.Contains(t, out, color.Cyan.Sequence())
	assert.Contains(t, out, color.Yellow.Sequence())

	lines := tu.Lines(out)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "load...")
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[1], "load done")
	assert.Contains(t, lines[1], "Used")
	assert.GreaterOrEqual(t, usedSeconds(t, lines[1]), 0.0)
}

func TestTimer_ElapsedMatchesDelay(t *testing.T) {
	lg, buf := newLogger(t)
	tm := New("sleep", lg)

	require.NoError(t, tm.Start())
	time.Sleep(100 * time.Millisecond)
	d, err := tm.Stop()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	lines := tu.Lines(buf.String())
	require.Len(t, lines, 2)
	assert.InDelta(t, 0.1, usedSeconds(t, lines[1]), 0.2)
}

func TestTimer_Misuse(t *testing.T) {
	lg, buf := newLogger(t)
	tm := New("misuse", lg)

	_, err := tm.Stop()
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Empty(t, buf.String())

	require.NoError(t, tm.Start())
	assert.ErrorIs(t, tm.Start(), ErrAlreadyStarted)

	_, err = tm.Stop()
	require.NoError(t, err)
	_, err = tm.Stop()
	assert.ErrorIs(t, err, ErrAlreadyStopped)

	// single-use: restarting a finished timer is refused
	assert.ErrorIs(t, tm.Start(), ErrAlreadyStarted)
	assert.Len(t, tu.Lines(buf.String()), 2)
}

func TestTimer_DefaultLogger(t *testing.T) {
	tm := New("x", nil)
	assert.Same(t, logging.Get(DefaultLoggerName), tm.logger)
	assert.Equal(t, "x", tm.Label())
}

func TestTimer_PlainLogger(t *testing.T) {
	var buf bytes.Buffer
	reg := logging.NewRegistry(logging.WithOutput(&buf), logging.WithColorMode(color.ModeNever))
	tm := New("plain", reg.Get("p"))
	require.NoError(t, tm.Start())
	_, err := tm.Stop()
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Regexp(t, `plain done\. Used: \d+\.\ds\.`, out)
}

func TestTrack_PropagatesError(t *testing.T) {
	lg, buf := newLogger(t)
	boom := errors.New("boom")

	err := Track("work", lg, func() error {
		return boom
	})
	assert.Same(t, boom, err)

	lines := tu.Lines(buf.String())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "work...")
	assert.Contains(t, lines[1], "work done")
	assert.Regexp(t, doneRe, lines[1])
}

func TestTrack_Success(t *testing.T) {
	lg, buf := newLogger(t)
	ran := false
	require.NoError(t, Track("ok", lg, func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
	assert.Len(t, tu.Lines(buf.String()), 2)
}

func TestTrack_LogsOnPanic(t *testing.T) {
	lg, buf := newLogger(t)

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = Track("panicky", lg, func() error {
			panic("kaboom")
		})
	})

	lines := tu.Lines(buf.String())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "panicky done")
}

func TestScope(t *testing.T) {
	lg, buf := newLogger(t)

	func() {
		defer Scope("scoped", lg)()
		assert.Len(t, tu.Lines(buf.String()), 1)
	}()

	lines := tu.Lines(buf.String())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "scoped done")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0s"},
		{49 * time.Millisecond, "0.0s"},
		{2300 * time.Millisecond, "2.3s"},
		{1260 * time.Millisecond, "1.3s"},
		{90 * time.Second, "90.0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d), "duration %v", tt.d)
	}
}

func TestTimer_String(t *testing.T) {
	tm := &Timer{label: "job", elapsed: 1500 * time.Millisecond}
	assert.Equal(t, "job: 1.5s", tm.String())
	tm.label = ""
	assert.Equal(t, "1.5s", tm.String())
}
