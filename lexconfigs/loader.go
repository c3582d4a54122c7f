package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/arithlex/configs"
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/modes"
)

//go:embed schema.cue
var Schema string

var configFileNames = []string{
	"arithlex.cue",
	".arithlex.cue",
}

// ConfigsLoader searches the working directory, the user config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode.IsTest() {
		return configs.NewLoader(nil, Schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
