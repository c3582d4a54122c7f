package reports

import (
	"errors"
	"fmt"
	"slices"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

var Formats = []Format{
	FormatTable,
	FormatJSON,
	FormatYAML,
	FormatTOML,
	FormatCSV,
	FormatMarkdown,
}

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(str string) (Format, error) {
	if f := Format(str); slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, str)
}
