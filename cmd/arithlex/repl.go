package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/arithlex/scans"
	"github.com/reusee/arithlex/sources"
)

func runREPL(ctx context.Context, scan scans.Scan, report scans.Report) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".arithlex_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		result, err := scan(ctx, sources.New(fmt.Sprintf("line%d", n), line))
		if result.Source != nil {
			if err := report(rl.Stdout(), []scans.Result{result}); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
