package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const usageWidth = 60

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		names := name
		if len(command.Aliases) > 0 {
			names += ", " + strings.Join(command.Aliases, ", ")
		}
		fmt.Fprintf(w, "%s%s\n", indent, names)
		if command.Description != "" {
			desc := wordwrap.WrapString(command.Description, usageWidth)
			for line := range strings.SplitSeq(desc, "\n") {
				fmt.Fprintf(w, "%s    %s\n", indent, line)
			}
		}
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
