package syslog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacility_RoundTrip(t *testing.T) {
	for _, facility := range allFacilities {
		parsed, err := ParseFacility(strings.ToLower(facility.String()))
		require.NoError(t, err, facility.String())
		assert.Equal(t, facility, parsed)
	}
}

func TestParseFacility_KernelAlias(t *testing.T) {
	parsed, err := ParseFacility("kernel")
	require.NoError(t, err)
	assert.Equal(t, FacilityKern, parsed)
}

func TestParseFacility_Unknown(t *testing.T) {
	parsed, err := ParseFacility("local8")
	assert.Error(t, err)
	assert.Equal(t, FacilityUser, parsed, "fallback should be the POSIX default")
}

func TestFacilityString_Unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Facility(100).String())
}
