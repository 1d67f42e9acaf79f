package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter writes reports as JSON documents.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns "json".
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the whole report, indented. In quiet mode only the result
// list is written, one compact line, for piping into other tools.
func (f *JSONFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if f.opts.Quiet {
		return enc.Encode(report.Results)
	}

	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
