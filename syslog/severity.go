package syslog

import (
	"fmt"
	"strings"
)

// Severity is a syslog severity level. The valid range is [0,7],
// ordered from most to least urgent per RFC 5424 table 2.
type Severity int

// Severity values from /usr/include/sys/syslog.h.
// These are the same on Linux, BSD, and OS X.
const (
	SeverityEmerg Severity = iota
	SeverityAlert
	SeverityCrit
	SeverityErr
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

func (s Severity) String() string {
	switch s {
	case SeverityEmerg:
		return "EMERG"
	case SeverityAlert:
		return "ALERT"
	case SeverityCrit:
		return "CRIT"
	case SeverityErr:
		return "ERR"
	case SeverityWarning:
		return "WARNING"
	case SeverityNotice:
		return "NOTICE"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity name case-insensitively, accepting
// the common aliases (emerg/emergency, err/error, warn/warning).
// On an unknown name it returns SeverityDebug alongside the error so
// callers that want best-effort behavior have a usable fallback.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "emerg", "emergency":
		return SeverityEmerg, nil
	case "alert":
		return SeverityAlert, nil
	case "crit", "critical":
		return SeverityCrit, nil
	case "err", "error":
		return SeverityErr, nil
	case "warn", "warning":
		return SeverityWarning, nil
	case "notice":
		return SeverityNotice, nil
	case "info":
		return SeverityInfo, nil
	case "debug":
		return SeverityDebug, nil
	default:
		return SeverityDebug, fmt.Errorf("invalid syslog severity: %s", s)
	}
}
