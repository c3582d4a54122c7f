package checks

import (
	"errors"
	"fmt"

	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/arithlex/sources"
)

var (
	ErrGap             = errors.New("span does not start where the previous one ended")
	ErrLiteral         = errors.New("literal does not match source")
	ErrShortCoverage   = errors.New("tokens do not cover the whole source")
	ErrNoEndOfInput    = errors.New("stream does not end with EndOfInput")
	ErrEarlyEndOfInput = errors.New("EndOfInput before the end of the stream")
)

// Coverage checks that content tokens tile the source and that exactly one EndOfInput closes the stream.
// EndOfInput may sit at [0,0) with text "\x00" or at [len,len) with empty text.
func Coverage(source *sources.Source, tokens []lexer.Token) error {
	content := source.Content
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.TokenEndOfInput {
		return ErrNoEndOfInput
	}

	offset := 0
	for _, token := range tokens[:len(tokens)-1] {
		span := token.Span
		if token.Kind == lexer.TokenEndOfInput {
			return OffsetError{Err: ErrEarlyEndOfInput, Source: source, Offset: offset}
		}
		if span.Start != offset || span.End < span.Start || span.End > len(content) {
			return OffsetError{
				Err:    fmt.Errorf("%w: %v", ErrGap, token),
				Source: source,
				Offset: offset,
			}
		}
		if content[span.Start:span.End] != span.Text {
			return OffsetError{
				Err:    fmt.Errorf("%w: %v", ErrLiteral, token),
				Source: source,
				Offset: span.Start,
			}
		}
		offset = span.End
	}
	if offset != len(content) {
		return OffsetError{Err: ErrShortCoverage, Source: source, Offset: offset}
	}

	end := tokens[len(tokens)-1].Span
	switch end {
	case lexer.Span{Text: "\x00"}, lexer.Span{Start: len(content), End: len(content)}:
		return nil
	}
	return fmt.Errorf("%w: bad span %v %q", ErrNoEndOfInput, end, end.Text)
}
