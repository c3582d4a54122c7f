package scans

import (
	"io"
	"os"

	"github.com/reusee/arithlex/lexconfigs"
	"github.com/reusee/arithlex/reports"
	"golang.org/x/term"
)

// Report writes results in the configured output format.
type Report func(w io.Writer, results []Result) error

func (Module) Report(
	format lexconfigs.OutputFormat,
) Report {
	return func(w io.Writer, results []Result) error {
		f, err := reports.ParseFormat(string(format))
		if err != nil {
			return err
		}
		docs := make([]reports.Document, 0, len(results))
		for _, result := range results {
			if result.Source == nil {
				continue
			}
			docs = append(docs, reports.Document{
				Source: result.Source.Name,
				Tokens: reports.Records(result.Tokens),
			})
		}
		return reports.RenderDocuments(w, f, docs, reports.Options{
			Colored: isTerminal(w),
		})
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
