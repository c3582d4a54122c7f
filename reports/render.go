package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

type Options struct {
	// Colored highlights Unsupported and Invalid rows in table output.
	Colored bool
	Title   string
}

// Document is the records of one source.
type Document struct {
	Source string   `json:"source" yaml:"source" toml:"source"`
	Tokens []Record `json:"tokens" yaml:"tokens" toml:"tokens"`
}

func Render(w io.Writer, format Format, records []Record, options Options) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, records)
	case FormatYAML:
		return encodeYAML(w, records)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(struct {
			Tokens []Record `toml:"tokens"`
		}{
			Tokens: records,
		})
	case FormatTable, FormatCSV, FormatMarkdown:
		return renderTable(w, format, records, options)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderDocuments renders a single document like Render. Several documents become one list in structured formats and titled tables otherwise.
func RenderDocuments(w io.Writer, format Format, docs []Document, options Options) error {
	if len(docs) == 1 {
		return Render(w, format, docs[0].Tokens, options)
	}
	switch format {
	case FormatJSON:
		return encodeJSON(w, docs)
	case FormatYAML:
		return encodeYAML(w, docs)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(struct {
			Sources []Document `toml:"sources"`
		}{
			Sources: docs,
		})
	case FormatTable, FormatCSV, FormatMarkdown:
		for _, doc := range docs {
			options.Title = doc.Source
			if err := renderTable(w, format, doc.Tokens, options); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func renderTable(w io.Writer, format Format, records []Record, options Options) error {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleRounded)
	if options.Title != "" {
		writer.SetTitle(options.Title)
	}
	writer.AppendHeader(table.Row{"start", "end", "kind", "literal"})
	colored := format == FormatTable && options.Colored
	for _, record := range records {
		kind := record.Kind
		if colored && (kind == "Unsupported" || kind == "Invalid") {
			kind = text.FgRed.Sprint(kind)
		}
		writer.AppendRow(table.Row{
			record.Start,
			record.End,
			kind,
			displayLiteral(record.Literal),
		})
	}

	var out string
	switch format {
	case FormatCSV:
		out = writer.RenderCSV()
	case FormatMarkdown:
		out = writer.RenderMarkdown()
	default:
		out = writer.Render()
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// displayLiteral quotes literals that would not be visible in a cell.
func displayLiteral(literal string) string {
	quoted := strconv.Quote(literal)
	if quoted[1:len(quoted)-1] != literal || literal == "" || literal == " " {
		return quoted
	}
	return literal
}
