// Package reader provides line-oriented reading of puzzle input.
package reader

// Line is a single line of input with its position.
type Line struct {
	// Text is the line content without the trailing newline.
	Text string

	// Source is the file path (or stream name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// IsBlank reports whether the line is empty.
func (l Line) IsBlank() bool {
	return l.Text == ""
}

// Texts returns the text of each line.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
