// Package identity probes the host and process fields stamped into
// syslog headers. The probe is deliberately an explicit call rather
// than something hidden inside formatter construction: run Discover
// once at startup and thread the result through.
package identity

import (
	"os"
	"path/filepath"
)

// Identity carries the identity fields of a syslog header. An empty
// Hostname means discovery failed or was never attempted; the
// formatters treat that as "field absent", never as an error.
type Identity struct {
	Hostname string
	Process  string
	PID      int
}

// Discover probes the environment for the current hostname, process
// name, and pid. It never fails: a hostname lookup error leaves
// Hostname empty, an executable lookup error leaves Process empty,
// and the pid always comes from the OS.
func Discover() Identity {
	id := Identity{PID: os.Getpid()}

	if hostname, err := os.Hostname(); err == nil {
		id.Hostname = hostname
	}
	if exe, err := os.Executable(); err == nil {
		id.Process = filepath.Base(exe)
	}

	return id
}
