package lexer

import (
	"iter"
	"unicode/utf8"
)

type Scanner struct {
	source    string
	currPos   int
	prevPos   int
	anchorEnd bool
}

type Option func(*Scanner)

// AnchorEndOfInput places the EndOfInput token at [len,len) with empty text instead of [0,0) with "\x00".
func AnchorEndOfInput() Option {
	return func(s *Scanner) {
		s.anchorEnd = true
	}
}

func NewScanner(source string, options ...Option) *Scanner {
	s := &Scanner{
		source: source,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Scanner) Source() string {
	return s.source
}

func (s *Scanner) Offset() int {
	return s.currPos
}

// Next returns the next token, or false once the EndOfInput token has been returned.
func (s *Scanner) Next() (Token, bool) {
	if s.currPos > len(s.source) {
		return Token{}, false
	}

	if s.currPos == len(s.source) {
		s.currPos++
		return s.endOfInput(), true
	}

	start := s.currPos
	var kind TokenKind
	if r, ok := s.readRune(); ok && isDigit(r) {
		s.unreadRune()
		s.scanNumber()
		kind = TokenNumber
	} else {
		if ok {
			s.unreadRune()
		}
		kind = s.scanSymbol()
	}

	return Token{
		Kind: kind,
		Span: newSpan(s.source, start, s.currPos),
	}, true
}

func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := s.Next()
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

func Scan(source string, options ...Option) []Token {
	var tokens []Token
	for token := range NewScanner(source, options...).All() {
		tokens = append(tokens, token)
	}
	return tokens
}

func (s *Scanner) endOfInput() Token {
	if s.anchorEnd {
		return Token{
			Kind: TokenEndOfInput,
			Span: Span{
				Start: len(s.source),
				End:   len(s.source),
			},
		}
	}
	return Token{
		Kind: TokenEndOfInput,
		Span: Span{
			Text: "\x00",
		},
	}
}

func (s *Scanner) readRune() (rune, bool) {
	if s.currPos >= len(s.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.source[s.currPos:])
	s.prevPos = s.currPos
	s.currPos += size
	return r, true
}

// unreadRune steps back over the last rune read. Only one step is remembered.
func (s *Scanner) unreadRune() {
	s.currPos = s.prevPos
}

func (s *Scanner) scanNumber() {
	for {
		r, ok := s.readRune()
		if !ok {
			return
		}
		if !isDigit(r) {
			s.unreadRune()
			return
		}
	}
}

func (s *Scanner) scanSymbol() TokenKind {
	r, ok := s.readRune()
	if !ok {
		return TokenInvalid
	}
	switch r {
	case '+':
		return TokenPlus
	case '-':
		return TokenMinus
	case '*':
		return TokenStar
	case '/':
		return TokenSlash
	case '(':
		return TokenOpenParen
	case ')':
		return TokenCloseParen
	case ' ':
		return TokenWhitespace
	}
	return TokenUnsupported
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
