package entities

import "fmt"

// OutputFormat selects how query results are rendered.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied format name; "" means text.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(raw) {
	case "", OutputFormatText:
		return OutputFormatText, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatYAML:
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", raw)
	}
}
