package reports

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/arithlex/lexer"
	"go.yaml.in/yaml/v3"
)

func TestRecords(t *testing.T) {
	records := Records(lexer.Scan("7 + 4 - 5"))
	if len(records) != 10 {
		t.Fatalf("got %d", len(records))
	}
	if records[2] != (Record{Start: 2, End: 3, Kind: "Plus", Literal: "+"}) {
		t.Fatalf("got %+v", records[2])
	}
	if records[9] != (Record{Start: 0, End: 0, Kind: "EndOfInput", Literal: "\x00"}) {
		t.Fatalf("got %+v", records[9])
	}
}

func TestParseFormat(t *testing.T) {
	for _, format := range Formats {
		got, err := ParseFormat(string(format))
		if err != nil {
			t.Fatal(err)
		}
		if got != format {
			t.Fatalf("got %v", got)
		}
	}
	if _, err := ParseFormat("html"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestRenderJSON(t *testing.T) {
	records := Records(lexer.Scan("(1*2)/0"))
	buf := new(bytes.Buffer)
	if err := Render(buf, FormatJSON, records, Options{}); err != nil {
		t.Fatal(err)
	}
	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d", len(got))
	}
	for i := range got {
		if got[i] != records[i] {
			t.Fatalf("got %+v, want %+v", got[i], records[i])
		}
	}
}

func TestRenderYAML(t *testing.T) {
	records := Records(lexer.Scan("12+3"))
	buf := new(bytes.Buffer)
	if err := Render(buf, FormatYAML, records, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kind: Number") {
		t.Fatalf("got %s", buf.String())
	}
	var got []Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[0].Literal != "12" || got[3].Literal != "\x00" {
		t.Fatalf("got %+v", got)
	}
}

func TestRenderTOML(t *testing.T) {
	records := Records(lexer.Scan("1-2"))
	buf := new(bytes.Buffer)
	if err := Render(buf, FormatTOML, records, Options{}); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Tokens []Record `toml:"tokens"`
	}
	if err := toml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Tokens) != 4 || got.Tokens[1].Kind != "Minus" {
		t.Fatalf("got %+v", got)
	}
}

func TestRenderTable(t *testing.T) {
	records := Records(lexer.Scan("7 @"))
	buf := new(bytes.Buffer)
	if err := Render(buf, FormatTable, records, Options{Title: "expr"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"╭", "╰",
		"expr",
		"Number",
		"Whitespace", `" "`,
		"Unsupported", "@",
		"EndOfInput", `"\x00"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("uncolored table should not contain escape codes")
	}

	buf.Reset()
	if err := Render(buf, FormatTable, records, Options{Colored: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Unsupported") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestRenderCSVAndMarkdown(t *testing.T) {
	records := Records(lexer.Scan("1*2"))

	buf := new(bytes.Buffer)
	if err := Render(buf, FormatCSV, records, Options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(lines[2], "Star") {
		t.Fatalf("got %q", lines[2])
	}

	buf.Reset()
	if err := Render(buf, FormatMarkdown, records, Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "| Star |") || !strings.Contains(out, "| EndOfInput |") {
		t.Fatalf("got %q", out)
	}
}

func TestRenderUnknown(t *testing.T) {
	err := Render(new(bytes.Buffer), Format("html"), nil, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	tokens := lexer.Scan("1 + a + 22")
	summary := Summarize(tokens)
	if summary.Tokens != 10 {
		t.Fatalf("got %d", summary.Tokens)
	}
	if summary.ByKind[lexer.TokenNumber] != 2 ||
		summary.ByKind[lexer.TokenPlus] != 2 ||
		summary.ByKind[lexer.TokenWhitespace] != 4 ||
		summary.ByKind[lexer.TokenEndOfInput] != 1 {
		t.Fatalf("got %+v", summary.ByKind)
	}
	if summary.Markers != 1 {
		t.Fatalf("got %d", summary.Markers)
	}
	args := summary.LogArgs()
	if args[0] != "tokens" || args[1] != 10 {
		t.Fatalf("got %v", args)
	}

	filtered := WithoutWhitespace(tokens)
	if len(filtered) != 6 {
		t.Fatalf("got %d", len(filtered))
	}
	for _, token := range filtered {
		if token.Kind == lexer.TokenWhitespace {
			t.Fatal()
		}
	}
}

func TestRenderDocuments(t *testing.T) {
	docs := []Document{
		{Source: "a", Tokens: Records(lexer.Scan("1"))},
		{Source: "b", Tokens: Records(lexer.Scan("+"))},
	}

	buf := new(bytes.Buffer)
	if err := RenderDocuments(buf, FormatJSON, docs, Options{}); err != nil {
		t.Fatal(err)
	}
	var got []Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Source != "b" || got[1].Tokens[0].Kind != "Plus" {
		t.Fatalf("got %+v", got)
	}

	buf.Reset()
	if err := RenderDocuments(buf, FormatTOML, docs, Options{}); err != nil {
		t.Fatal(err)
	}
	var gotTOML struct {
		Sources []Document `toml:"sources"`
	}
	if err := toml.Unmarshal(buf.Bytes(), &gotTOML); err != nil {
		t.Fatal(err)
	}
	if len(gotTOML.Sources) != 2 || gotTOML.Sources[0].Tokens[0].Literal != "1" {
		t.Fatalf("got %+v", gotTOML)
	}

	buf.Reset()
	if err := RenderDocuments(buf, FormatTable, docs, Options{}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "╭") != 2 {
		t.Fatalf("got %s", buf.String())
	}

	buf.Reset()
	if err := RenderDocuments(buf, FormatYAML, docs[:1], Options{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "source:") {
		t.Fatalf("single document should render plain records, got %s", buf.String())
	}

	if err := RenderDocuments(buf, Format("xml"), docs, Options{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
}
