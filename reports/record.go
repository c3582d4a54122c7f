package reports

import "github.com/reusee/arithlex/lexer"

type Record struct {
	Start   int    `json:"start" yaml:"start" toml:"start"`
	End     int    `json:"end" yaml:"end" toml:"end"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Literal string `json:"literal" yaml:"literal" toml:"literal"`
}

func Records(tokens []lexer.Token) []Record {
	ret := make([]Record, 0, len(tokens))
	for _, token := range tokens {
		ret = append(ret, Record{
			Start:   token.Span.Start,
			End:     token.Span.End,
			Kind:    token.Kind.String(),
			Literal: token.Span.Text,
		})
	}
	return ret
}
