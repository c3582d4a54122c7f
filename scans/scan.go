package scans

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/arithlex/checks"
	"github.com/reusee/arithlex/lexconfigs"
	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/reports"
	"github.com/reusee/arithlex/sources"
)

var ErrRejected = errors.New("token stream rejected")

type Result struct {
	Source  *sources.Source
	Tokens  []lexer.Token
	Summary reports.Summary
}

// Scan tokenizes one source. In strict mode a stream with Unsupported or Invalid tokens is returned together with an ErrRejected error.
type Scan func(ctx context.Context, source *sources.Source) (Result, error)

func (Module) Scan(
	placement lexconfigs.EndOfInputPlacement,
	strict lexconfigs.Strict,
	skipWhitespace lexconfigs.SkipWhitespace,
	newSession logs.NewSession,
	logger logs.Logger,
) Scan {
	options := placement.ScannerOptions()
	return func(ctx context.Context, source *sources.Source) (result Result, err error) {
		ctx, _ = newSession(ctx, source.Name)
		defer func() {
			err = logs.WrapSession(ctx, err)
		}()

		tokens := lexer.Scan(source.Content, options...)
		if err := checks.Coverage(source, tokens); err != nil {
			return result, wrap(err)
		}

		result.Source = source
		result.Summary = reports.Summarize(tokens)
		logger.InfoContext(ctx, "scanned",
			append([]any{"source", source.Name}, result.Summary.LogArgs()...)...,
		)

		if skipWhitespace {
			tokens = reports.WithoutWhitespace(tokens)
		}
		result.Tokens = tokens

		if strict {
			if err := checks.Reject(source, tokens); err != nil {
				logger.WarnContext(ctx, "rejected", "source", source.Name)
				return result, fmt.Errorf("%w: %w", ErrRejected, err)
			}
		}

		return result, nil
	}
}
