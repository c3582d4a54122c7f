package scans

import (
	"github.com/reusee/arithlex/debugs"
	"github.com/reusee/arithlex/lexconfigs"
	"github.com/reusee/arithlex/sources"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	Lexconfigs lexconfigs.Module
	Sources    sources.Module
	Debugs     debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
