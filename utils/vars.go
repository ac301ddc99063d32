package utils

import (
	"os"
	"strconv"
	"strings"
)

// Defaults for the syslogfmt CLI, overridable through the environment.

var DefaultFormat string

var DefaultFacility string

var DefaultUTC bool

func init() {
	DefaultFormat = GetSanitizedEnvString("SYSLOGFMT_FORMAT", "rfc3164")
	DefaultFacility = GetSanitizedEnvString("SYSLOGFMT_FACILITY", "user")
	DefaultUTC = GetSanitizedEnvBool("SYSLOGFMT_UTC", false)
}

func GetSanitizedEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	value = strings.TrimSpace(value)
	value = strings.ToLower(value)

	return value
}

func GetSanitizedEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	value = strings.TrimSpace(value)

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
