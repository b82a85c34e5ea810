package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when parsing an unsupported output format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a report is rendered.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{Text, JSON, YAML}
}

// ParseFormat parses a format name, ignoring case and surrounding space.
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	return string(f)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}
