package syslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allSeverities = []Severity{
	SeverityEmerg, SeverityAlert, SeverityCrit, SeverityErr,
	SeverityWarning, SeverityNotice, SeverityInfo, SeverityDebug,
}

var allFacilities = []Facility{
	FacilityKern, FacilityUser, FacilityMail, FacilityDaemon,
	FacilityAuth, FacilitySyslog, FacilityLPR, FacilityNews,
	FacilityUUCP, FacilityCron, FacilityAuthpriv, FacilityFTP,
	FacilityLocal0, FacilityLocal1, FacilityLocal2, FacilityLocal3,
	FacilityLocal4, FacilityLocal5, FacilityLocal6, FacilityLocal7,
}

func TestEncodePriority_AllPairs(t *testing.T) {
	for _, facility := range allFacilities {
		for _, severity := range allSeverities {
			p := EncodePriority(severity, facility)
			assert.Equal(t, Priority(int(facility)|int(severity)), p)
			assert.GreaterOrEqual(t, int(p), 0)
			assert.LessOrEqual(t, int(p), 191)
		}
	}
}

func TestEncodePriority_KnownValues(t *testing.T) {
	tests := []struct {
		severity Severity
		facility Facility
		expected Priority
	}{
		{SeverityEmerg, FacilityKern, 0},
		{SeverityCrit, FacilityAuth, 34},   // the RFC 3164 §5.4 example
		{SeverityInfo, FacilityUser, 14},   // default-facility informational
		{SeverityDebug, FacilityLocal7, 191},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EncodePriority(tt.severity, tt.facility),
			"%v|%v", tt.facility, tt.severity)
	}
}
