package formats

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"syslogfmt/identity"
	"syslogfmt/syslog"
)

// Timestamp layout per RFC 3164 §4.1.2: abbreviated month,
// space-padded day, 24-hour clock. No year.
const stampLayout = "Jan _2 15:04:05"

// Formatter3164 encodes the legacy BSD syslog line:
//
//	<34>Oct 11 22:14:15 mymachine su[123]: 'su root' failed
//
// An empty Hostname omits the hostname field and its trailing space
// rather than substituting a placeholder; a host that never learned
// its own name is a legitimate permanent state here.
type Formatter3164 struct {
	Facility syslog.Facility
	Hostname string
	Process  string
	PID      int

	// UTC renders the timestamp in UTC instead of local wall-clock
	// time, which keeps output deterministic across environments
	// where the local offset is unreliable.
	UTC bool
}

// NewFormatter3164 builds a formatter stamping the given facility and
// previously discovered identity. Run identity.Discover once at
// startup and pass its result here; construction never probes the
// environment itself.
func NewFormatter3164(facility syslog.Facility, id identity.Identity) Formatter3164 {
	return Formatter3164{
		Facility: facility,
		Hostname: id.Hostname,
		Process:  id.Process,
		PID:      id.PID,
	}
}

// Format writes one RFC 3164 line, without a trailing newline, to w.
// The message is rendered with the fmt verbs, so anything printable
// is accepted. The only failure path is a sink write failure, which
// is returned with its cause wrapped.
func (f Formatter3164) Format(w io.Writer, severity syslog.Severity, message any) error {
	pri := syslog.EncodePriority(severity, f.Facility)
	stamp := f.timestamp().Format(stampLayout)

	var err error
	if f.Hostname != "" {
		_, err = fmt.Fprintf(w, "<%d>%s %s %s[%d]: %v",
			pri, stamp, f.Hostname, f.Process, f.PID, message)
	} else {
		_, err = fmt.Fprintf(w, "<%d>%s %s[%d]: %v",
			pri, stamp, f.Process, f.PID, message)
	}
	if err != nil {
		return errors.Wrap(err, "writing rfc3164 message")
	}
	return nil
}

func (f Formatter3164) timestamp() time.Time {
	if f.UTC {
		return now().UTC()
	}
	return now().Local()
}
