// Package formats renders log events into the two textual syslog wire
// formats: the legacy BSD format of RFC 3164 and the structured format
// of RFC 5424. It is a pure encoding layer: identity discovery and
// transport plumbing live with the caller, and neither formatter holds
// mutable state after construction, so a single instance can be shared
// across goroutines as long as the sink handed to each call tolerates
// it.
package formats

import (
	"io"
	"time"

	"syslogfmt/syslog"
)

// now is swapped out by tests that need a fixed clock.
var now = time.Now

// LogFormatter is the contract shared by both wire-format encoders,
// parameterized by the payload shape each format accepts. Format
// writes exactly one line, without a trailing newline, to w; framing
// is the transport's concern.
type LogFormatter[T any] interface {
	Format(w io.Writer, severity syslog.Severity, message T) error
}

// The per-severity helpers below are convenience wrappers over
// Format, one per severity level.

func Emerg[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityEmerg, message)
}

func Alert[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityAlert, message)
}

func Crit[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityCrit, message)
}

func Err[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityErr, message)
}

func Warning[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityWarning, message)
}

func Notice[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityNotice, message)
}

func Info[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityInfo, message)
}

func Debug[T any](f LogFormatter[T], w io.Writer, message T) error {
	return f.Format(w, syslog.SeverityDebug, message)
}
