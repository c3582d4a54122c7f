package lexer

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var ErrNotNumber = errors.New("not a number token")

// Decimal derives the value of a Number token from its literal. Digit runs of any length are exact.
func (t Token) Decimal() (*apd.Decimal, error) {
	if t.Kind != TokenNumber {
		return nil, fmt.Errorf("%w: %s", ErrNotNumber, t.Kind)
	}
	d, _, err := apd.NewFromString(t.Span.Text)
	if err != nil {
		return nil, fmt.Errorf("number literal %q: %w", t.Span.Text, err)
	}
	return d, nil
}

// Int64 is Decimal narrowed to int64. Literals beyond the int64 range return an error.
func (t Token) Int64() (int64, error) {
	d, err := t.Decimal()
	if err != nil {
		return 0, err
	}
	i, err := d.Int64()
	if err != nil {
		return 0, fmt.Errorf("number literal %q: %w", t.Span.Text, err)
	}
	return i, nil
}
