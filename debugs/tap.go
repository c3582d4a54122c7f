package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/sources"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a starlark REPL on stdin with the scanned source and tokens in scope.
type Tap func(ctx context.Context, source *sources.Source, tokens []lexer.Token)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, source *sources.Source, tokens []lexer.Token) {
		globals := Globals(source, tokens)
		logger.InfoContext(ctx, "tap: "+source.Name,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+source.Name)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, globals)
	}
}

func Globals(source *sources.Source, tokens []lexer.Token) starlark.StringDict {
	return starlark.StringDict{
		"name":   toStarlarkValue(source.Name),
		"source": toStarlarkValue(source.Content),
		"tokens": toStarlarkValue(tokens),
		"scan":   scanBuiltin,
		"value":  valueBuiltin,
	}
}
