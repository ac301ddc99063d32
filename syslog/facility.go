package syslog

import (
	"fmt"
	"strings"
)

// Facility is a syslog facility code, already shifted into the high
// bits of the priority value as POSIX defines it.
type Facility int

// Facility values from /usr/include/sys/syslog.h.
// These are the same up to FacilityFTP on Linux, BSD, and OS X.
const (
	FacilityKern Facility = iota << 3
	FacilityUser
	FacilityMail
	FacilityDaemon
	FacilityAuth
	FacilitySyslog
	FacilityLPR
	FacilityNews
	FacilityUUCP
	FacilityCron
	FacilityAuthpriv
	FacilityFTP
	_ // unused
	_ // unused
	_ // unused
	_ // unused
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

var facilityMap = map[string]Facility{
	"KERN":     FacilityKern,
	"KERNEL":   FacilityKern,
	"USER":     FacilityUser,
	"MAIL":     FacilityMail,
	"DAEMON":   FacilityDaemon,
	"AUTH":     FacilityAuth,
	"SYSLOG":   FacilitySyslog,
	"LPR":      FacilityLPR,
	"NEWS":     FacilityNews,
	"UUCP":     FacilityUUCP,
	"CRON":     FacilityCron,
	"AUTHPRIV": FacilityAuthpriv,
	"FTP":      FacilityFTP,
	"LOCAL0":   FacilityLocal0,
	"LOCAL1":   FacilityLocal1,
	"LOCAL2":   FacilityLocal2,
	"LOCAL3":   FacilityLocal3,
	"LOCAL4":   FacilityLocal4,
	"LOCAL5":   FacilityLocal5,
	"LOCAL6":   FacilityLocal6,
	"LOCAL7":   FacilityLocal7,
}

func (f Facility) String() string {
	switch f {
	case FacilityKern:
		return "KERN"
	case FacilityUser:
		return "USER"
	case FacilityMail:
		return "MAIL"
	case FacilityDaemon:
		return "DAEMON"
	case FacilityAuth:
		return "AUTH"
	case FacilitySyslog:
		return "SYSLOG"
	case FacilityLPR:
		return "LPR"
	case FacilityNews:
		return "NEWS"
	case FacilityUUCP:
		return "UUCP"
	case FacilityCron:
		return "CRON"
	case FacilityAuthpriv:
		return "AUTHPRIV"
	case FacilityFTP:
		return "FTP"
	case FacilityLocal0:
		return "LOCAL0"
	case FacilityLocal1:
		return "LOCAL1"
	case FacilityLocal2:
		return "LOCAL2"
	case FacilityLocal3:
		return "LOCAL3"
	case FacilityLocal4:
		return "LOCAL4"
	case FacilityLocal5:
		return "LOCAL5"
	case FacilityLocal6:
		return "LOCAL6"
	case FacilityLocal7:
		return "LOCAL7"
	default:
		return "UNKNOWN"
	}
}

// ParseFacility parses a facility name case-insensitively. On an
// unknown name it returns FacilityUser, the POSIX default, alongside
// the error.
func ParseFacility(s string) (Facility, error) {
	if facility, ok := facilityMap[strings.ToUpper(s)]; ok {
		return facility, nil
	}
	return FacilityUser, fmt.Errorf("invalid syslog facility: %s", s)
}
