package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/reusee/arithlex/cmds"
	"github.com/reusee/arithlex/debugs"
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/modes"
	"github.com/reusee/arithlex/scans"
	"github.com/reusee/arithlex/sources"
	"github.com/reusee/dscope"
)

const demoInput = "7 + 4 - 5"

var (
	exprs = cmds.Collect[string]("-expr", "scan an expression given on the command line", "-e")
	files = cmds.Collect[string]("-file", "scan a file, - for stdin")
	urls  = cmds.Collect[string]("-url", "scan the body of an http or https url")

	replMode bool
	tapMode  bool
)

func init() {
	cmds.Define("-repl", cmds.Func(func() {
		replMode = true
	}).Desc("scan lines read interactively"))
	cmds.Define("-tap", cmds.Func(func() {
		tapMode = true
	}).Desc("open a starlark shell with the tokens of each source after reporting"))
}

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(scans.Module),
		modes.ForProduction(),
	).Call(func(
		loadAll sources.LoadAll,
		scan scans.Scan,
		scanAll scans.ScanAll,
		report scans.Report,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		ctx := context.Background()

		if replMode {
			runREPL(ctx, scan, report)
			return
		}

		var srcs []*sources.Source
		for i, expr := range *exprs {
			srcs = append(srcs, sources.New(fmt.Sprintf("expr%d", i+1), expr))
		}
		loaded, err := loadAll(ctx, slices.Concat(*files, *urls))
		if err != nil {
			exit(err)
		}
		srcs = append(srcs, loaded...)
		if len(srcs) == 0 {
			srcs = append(srcs, sources.New("demo", demoInput))
		}

		results, scanErr := scanAll(ctx, srcs)
		if err := report(os.Stdout, results); err != nil {
			exit(err)
		}
		if tapMode {
			for _, result := range results {
				if result.Source != nil {
					tap(ctx, result.Source, result.Tokens)
				}
			}
		}
		if scanErr != nil {
			logger.Debug("scan failed", "error", scanErr)
			exit(scanErr)
		}
	})
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
