package checks

import (
	"fmt"
	"strings"

	"github.com/reusee/arithlex/sources"
	"golang.org/x/text/width"
)

// OffsetError locates Err at a byte offset of Source and renders the offending line with a caret.
type OffsetError struct {
	Err    error
	Source *sources.Source
	Offset int
}

func (o OffsetError) Error() string {
	if o.Source == nil {
		return fmt.Sprintf("%s at offset %d", o.Err.Error(), o.Offset)
	}

	line, column := o.Source.Position(o.Offset)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", o.Err.Error(), o.Source.Name, line, column)

	if idx := line - 1; idx < len(o.Source.Lines) {
		text := o.Source.Lines[idx]
		sb.WriteString(text)
		sb.WriteString("\n")
		for i, r := range []rune(text) {
			if i >= column-1 {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (o OffsetError) Unwrap() error {
	return o.Err
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
