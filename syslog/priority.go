package syslog

// Priority is the single-byte PRI value carried in the header of
// every syslog message. The valid range is [0,191].
type Priority int

// EncodePriority combines a severity and a facility into the PRI
// value. The facility constants already carry their POSIX shift, so
// the combination is a plain bitwise OR.
func EncodePriority(severity Severity, facility Facility) Priority {
	return Priority(int(facility) | int(severity))
}
