package checks

import (
	"errors"
	"fmt"

	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/arithlex/sources"
)

var (
	ErrUnsupported = errors.New("unsupported character")
	ErrInvalid     = errors.New("invalid token")
)

// Reject fails on the first Unsupported or Invalid token.
func Reject(source *sources.Source, tokens []lexer.Token) error {
	for _, token := range tokens {
		var err error
		switch token.Kind {
		case lexer.TokenUnsupported:
			err = fmt.Errorf("%w %q", ErrUnsupported, token.Span.Text)
		case lexer.TokenInvalid:
			err = ErrInvalid
		default:
			continue
		}
		return OffsetError{
			Err:    err,
			Source: source,
			Offset: token.Span.Start,
		}
	}
	return nil
}
