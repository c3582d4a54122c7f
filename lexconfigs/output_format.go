package lexconfigs

import (
	"github.com/reusee/arithlex/cmds"
	"github.com/reusee/arithlex/configs"
)

type OutputFormat string

var _ configs.Configurable = OutputFormat("")

func (OutputFormat) ConfigKeys() []string {
	return []string{"output_format"}
}

const DefaultOutputFormat OutputFormat = "table"

var formatFlag = cmds.Var[string]("-format")

func init() {
	cmds.GlobalExecutor.Define("-f", cmds.Func(func(format string) {
		*formatFlag = format
	}).Desc("output format: table, json, yaml, toml, csv or markdown"))
}

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	if *formatFlag != "" {
		return OutputFormat(*formatFlag)
	}
	if format := configs.Lookup[OutputFormat](loader); format != "" {
		return format
	}
	return DefaultOutputFormat
}
