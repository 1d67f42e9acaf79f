package reader

import (
	"context"
	"io"
	"strings"
)

// StringSource implements Source over in-memory text.
type StringSource struct {
	name  string
	lines []string
	pos   int
}

// NewStringSource creates a Source over text. The name is reported as the
// Source of every line.
func NewStringSource(name, text string) *StringSource {
	return &StringSource{name: name, lines: SplitLines(text)}
}

// Next returns the next line.
func (s *StringSource) Next(ctx context.Context) (*Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.lines) {
		return nil, io.EOF
	}
	s.pos++
	return &Line{
		Text:    s.lines[s.pos-1],
		Source:  s.name,
		LineNum: s.pos,
	}, nil
}

// Close is a no-op.
func (s *StringSource) Close() error {
	return nil
}

// SplitLines splits text into lines. Both "\n" and "\r\n" end a line, and a
// trailing newline does not produce a final empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Lines builds Line values from plain strings, numbering them from 1.
func Lines(name string, texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = Line{Text: t, Source: name, LineNum: i + 1}
	}
	return out
}
