package utils

import (
	"strings"

	"github.com/pkg/errors"

	"syslogfmt/formats"
)

// ParseStructuredData turns repeatable --sd flag values of the form
//
//	"exampleSDID@32473 iut=3 eventSource=Application"
//
// into a structured data mapping. Elements repeating an SD-ID merge
// their parameters; a later value for the same parameter name wins.
// This parses command-line arguments, not syslog wire input.
func ParseStructuredData(elements []string) (formats.StructuredData, error) {
	data := formats.StructuredData{}

	for _, element := range elements {
		fields := strings.Fields(element)
		if len(fields) == 0 {
			return nil, errors.New("empty structured data element")
		}

		id := fields[0]
		params, ok := data[id]
		if !ok {
			params = map[string]string{}
			data[id] = params
		}

		for _, kv := range fields[1:] {
			name, value, found := strings.Cut(kv, "=")
			if !found || name == "" {
				return nil, errors.Errorf("invalid structured data parameter %q", kv)
			}
			params[name] = strings.Trim(value, `"`)
		}
	}

	return data, nil
}
