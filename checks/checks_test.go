package checks

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/arithlex/sources"
)

func TestReject(t *testing.T) {
	for _, input := range []string{
		"",
		"7 + 4 - 5",
		"(1*2)/0",
	} {
		if err := Reject(sources.New("expr", input), lexer.Scan(input)); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	}

	source := sources.New("expr", "1 + 2 3 @ 4")
	err := Reject(source, lexer.Scan(source.Content))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v", err)
	}
	var offsetErr OffsetError
	if !errors.As(err, &offsetErr) {
		t.Fatal()
	}
	if offsetErr.Offset != 8 {
		t.Fatalf("got %d", offsetErr.Offset)
	}
	want := "unsupported character \"@\" at expr:1:9\n1 + 2 3 @ 4\n        ^\n"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}

	// newline is not whitespace
	source = sources.New("expr", "1 + 2\n3 @ 4")
	err = Reject(source, lexer.Scan(source.Content))
	if !errors.As(err, &offsetErr) {
		t.Fatalf("got %v", err)
	}
	if offsetErr.Offset != 5 {
		t.Fatalf("got %d", offsetErr.Offset)
	}

	err = Reject(nil, []lexer.Token{{Kind: lexer.TokenInvalid}})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "invalid token at offset 0" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCaretSecondLine(t *testing.T) {
	source := sources.New("expr", "1 + 2\n3 @ 4")
	err := OffsetError{
		Err:    ErrUnsupported,
		Source: source,
		Offset: strings.Index(source.Content, "@"),
	}
	want := "unsupported character at expr:2:3\n3 @ 4\n  ^\n"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCaretWidth(t *testing.T) {
	source := sources.New("expr", "１+\t×@")
	err := OffsetError{
		Err:    ErrUnsupported,
		Source: source,
		Offset: strings.Index(source.Content, "@"),
	}
	lines := strings.Split(err.Error(), "\n")
	// fullwidth digit is two columns, the tab is kept, × is one column
	if lines[2] != "   \t ^" {
		t.Fatalf("got %q", lines[2])
	}
}

func TestCoverage(t *testing.T) {
	for _, input := range []string{
		"",
		"7 + 4 - 5",
		"123abc",
		"2×3\n",
	} {
		source := sources.New("expr", input)
		if err := Coverage(source, lexer.Scan(input)); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if err := Coverage(source, lexer.Scan(input, lexer.AnchorEndOfInput())); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	}
}

func TestCoverageFailures(t *testing.T) {
	source := sources.New("expr", "1+2")
	tokens := lexer.Scan(source.Content)

	tests := []struct {
		name   string
		tokens []lexer.Token
		err    error
	}{
		{
			name: "empty",
			err:  ErrNoEndOfInput,
		},
		{
			name:   "no end",
			tokens: tokens[:len(tokens)-1],
			err:    ErrNoEndOfInput,
		},
		{
			name:   "gap",
			tokens: append([]lexer.Token{tokens[0]}, tokens[2:]...),
			err:    ErrGap,
		},
		{
			name:   "short",
			tokens: append(append([]lexer.Token{}, tokens[:2]...), tokens[3]),
			err:    ErrShortCoverage,
		},
		{
			name:   "early end",
			tokens: append([]lexer.Token{tokens[3]}, tokens...),
			err:    ErrEarlyEndOfInput,
		},
		{
			name: "literal",
			tokens: append([]lexer.Token{{
				Kind: lexer.TokenNumber,
				Span: lexer.Span{Start: 0, End: 1, Text: "9"},
			}}, tokens[1:]...),
			err: ErrLiteral,
		},
		{
			name: "end span",
			tokens: append(append([]lexer.Token{}, tokens[:3]...), lexer.Token{
				Kind: lexer.TokenEndOfInput,
				Span: lexer.Span{Start: 1, End: 1},
			}),
			err: ErrNoEndOfInput,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Coverage(source, test.tokens)
			if !errors.Is(err, test.err) {
				t.Fatalf("got %v", err)
			}
		})
	}
}
