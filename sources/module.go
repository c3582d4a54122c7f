package sources

import (
	"io"
	"os"

	"github.com/reusee/arithlex/nets"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
