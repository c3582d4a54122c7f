package lexconfigs

import (
	"runtime"

	"github.com/reusee/arithlex/cmds"
	"github.com/reusee/arithlex/configs"
)

// Jobs bounds how many sources are scanned at the same time.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigKeys() []string {
	return []string{"jobs"}
}

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	n := runtime.NumCPU()
	if *jobsFlag > 0 {
		n = *jobsFlag
	} else if configured := configs.Lookup[Jobs](loader); configured > 0 {
		n = int(configured)
	}
	return Jobs(n)
}
