package formats

import (
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"

	"syslogfmt/syslog"
)

// setNow pins the package clock for the duration of a test.
func setNow(t *testing.T, fixed time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = old })
}

var errSinkClosed = errors.New("sink closed")

// failingWriter fails every write, for exercising the Format error path.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}

func TestIsPrintUSASCII_Range(t *testing.T) {
	for r := rune(33); r <= 126; r++ {
		if !isPrintUSASCII(r) {
			t.Errorf("rune %d should be printable US-ASCII", r)
		}
	}
}

func TestIsPrintUSASCII_SpaceOutOfRange(t *testing.T) {
	if isPrintUSASCII(' ') {
		t.Error("space (32) should not be printable US-ASCII")
	}
}

func TestIsPrintUSASCII_DeleteOutOfRange(t *testing.T) {
	if isPrintUSASCII(127) {
		t.Error("DEL (127) should not be printable US-ASCII")
	}
}

func TestIsPrintUSASCII_NonASCII(t *testing.T) {
	if isPrintUSASCII('é') || isPrintUSASCII('\n') {
		t.Error("non-ASCII and control characters should be rejected")
	}
}

// severityRecorder captures the severity each convenience helper
// dispatches with.
type severityRecorder struct {
	severities *[]syslog.Severity
}

func (r severityRecorder) Format(_ io.Writer, severity syslog.Severity, _ string) error {
	*r.severities = append(*r.severities, severity)
	return nil
}

func TestSeverityHelpers_Dispatch(t *testing.T) {
	var got []syslog.Severity
	var f LogFormatter[string] = severityRecorder{severities: &got}

	helpers := []func(LogFormatter[string], io.Writer, string) error{
		Emerg[string], Alert[string], Crit[string], Err[string],
		Warning[string], Notice[string], Info[string], Debug[string],
	}
	for _, helper := range helpers {
		if err := helper(f, io.Discard, "msg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []syslog.Severity{
		syslog.SeverityEmerg, syslog.SeverityAlert, syslog.SeverityCrit,
		syslog.SeverityErr, syslog.SeverityWarning, syslog.SeverityNotice,
		syslog.SeverityInfo, syslog.SeverityDebug,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("helper %d dispatched severity %v, want %v", i, got[i], want[i])
		}
	}
}
