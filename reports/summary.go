package reports

import (
	"github.com/reusee/arithlex/lexer"
	"github.com/samber/lo"
)

type Summary struct {
	Tokens  int
	ByKind  map[lexer.TokenKind]int
	Markers int
}

func Summarize(tokens []lexer.Token) Summary {
	byKind := lo.CountValuesBy(tokens, func(token lexer.Token) lexer.TokenKind {
		return token.Kind
	})
	markers := lo.CountBy(tokens, func(token lexer.Token) bool {
		return token.Kind.IsMarker()
	})
	return Summary{
		Tokens:  len(tokens),
		ByKind:  byKind,
		Markers: markers,
	}
}

// LogArgs flattens the summary into slog key-value pairs.
func (s Summary) LogArgs() []any {
	args := []any{"tokens", s.Tokens}
	for kind := lexer.TokenInvalid; kind <= lexer.TokenEndOfInput; kind++ {
		if n := s.ByKind[kind]; n > 0 {
			args = append(args, kind.String(), n)
		}
	}
	return args
}

// WithoutWhitespace is the consumer-side filter; the scanner itself never drops tokens.
func WithoutWhitespace(tokens []lexer.Token) []lexer.Token {
	return lo.Filter(tokens, func(token lexer.Token, _ int) bool {
		return token.Kind != lexer.TokenWhitespace
	})
}
