package sources

import (
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func New(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Position converts a byte offset to a 1-based line and a 1-based column counted in runes.
func (s *Source) Position(offset int) (line, column int) {
	offset = max(0, min(offset, len(s.Content)))
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if s.Content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = utf8.RuneCountInString(s.Content[lineStart:offset]) + 1
	return
}
