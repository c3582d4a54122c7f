package lexer

import "fmt"

type Token struct {
	Kind TokenKind
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Span.Text, t.Span)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenOpenParen
	TokenCloseParen
	TokenWhitespace
	TokenUnsupported
	TokenEndOfInput
)

var tokenKindNames = [...]string{
	TokenInvalid:     "Invalid",
	TokenNumber:      "Number",
	TokenPlus:        "Plus",
	TokenMinus:       "Minus",
	TokenStar:        "Star",
	TokenSlash:       "Slash",
	TokenOpenParen:   "OpenParen",
	TokenCloseParen:  "CloseParen",
	TokenWhitespace:  "Whitespace",
	TokenUnsupported: "Unsupported",
	TokenEndOfInput:  "EndOfInput",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (k TokenKind) MarshalText() ([]byte, error) {
	if int(k) >= len(tokenKindNames) {
		return nil, fmt.Errorf("unknown token kind %d", k)
	}
	return []byte(tokenKindNames[k]), nil
}

func (k *TokenKind) UnmarshalText(text []byte) error {
	for i, name := range tokenKindNames {
		if name == string(text) {
			*k = TokenKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// IsMarker reports whether the kind marks input the scanner could not classify.
func (k TokenKind) IsMarker() bool {
	return k == TokenInvalid || k == TokenUnsupported
}
