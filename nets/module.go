package nets

import (
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/dscope"
)

// Module needs a configs.Loader and a modes.Mode from the enclosing scope.
type Module struct {
	dscope.Module
	Logs logs.Module
}
