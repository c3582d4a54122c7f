package lexconfigs

import (
	"github.com/reusee/arithlex/cmds"
	"github.com/reusee/arithlex/configs"
	"github.com/reusee/arithlex/lexer"
)

// EndOfInputPlacement is "zero" for the [0,0) EndOfInput span or "end" for [len,len).
type EndOfInputPlacement string

var _ configs.Configurable = EndOfInputPlacement("")

func (EndOfInputPlacement) ConfigKeys() []string {
	return []string{"eof_span"}
}

const (
	EndOfInputAtZero EndOfInputPlacement = "zero"
	EndOfInputAtEnd  EndOfInputPlacement = "end"
)

var eofAtEndFlag = cmds.Switch("-eof-at-end")

func (Module) EndOfInputPlacement(
	loader configs.Loader,
) EndOfInputPlacement {
	if *eofAtEndFlag {
		return EndOfInputAtEnd
	}
	if placement := configs.Lookup[EndOfInputPlacement](loader); placement != "" {
		return placement
	}
	return EndOfInputAtZero
}

func (e EndOfInputPlacement) ScannerOptions() []lexer.Option {
	if e == EndOfInputAtEnd {
		return []lexer.Option{lexer.AnchorEndOfInput()}
	}
	return nil
}
