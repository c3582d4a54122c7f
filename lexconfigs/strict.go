package lexconfigs

import (
	"github.com/reusee/arithlex/cmds"
	"github.com/reusee/arithlex/configs"
)

// Strict rejects token streams containing Unsupported or Invalid tokens.
type Strict bool

var _ configs.Configurable = Strict(false)

func (Strict) ConfigKeys() []string {
	return []string{"strict"}
}

var strictFlag = cmds.Switch("-strict")

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return Strict(*strictFlag) || configs.Lookup[Strict](loader)
}

// SkipWhitespace drops Whitespace tokens before reporting.
type SkipWhitespace bool

var _ configs.Configurable = SkipWhitespace(false)

func (SkipWhitespace) ConfigKeys() []string {
	return []string{"skip_whitespace"}
}

var skipWhitespaceFlag = cmds.Switch("-skip-whitespace")

func (Module) SkipWhitespace(
	loader configs.Loader,
) SkipWhitespace {
	return SkipWhitespace(*skipWhitespaceFlag) || configs.Lookup[SkipWhitespace](loader)
}
