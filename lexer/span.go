package lexer

import (
	"fmt"
	"strings"
)

// Span is the half-open byte range [Start, End) of the source plus a copy of the text it covers.
type Span struct {
	Start int
	End   int
	Text  string
}

func newSpan(source string, start, end int) Span {
	return Span{
		Start: start,
		End:   end,
		Text:  strings.Clone(source[start:end]),
	}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
