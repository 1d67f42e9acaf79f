// Package detector provides automatic puzzle detection for input files.
package detector

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/tduindam/aoc-2022/pkg/reader"
)

// DetectionResult holds the result of analyzing an input file.
type DetectionResult struct {
	Matches       []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines  int           // Number of non-blank lines sampled
	BlankLines    int           // Number of blank lines seen while sampling
	ParsedLines   int           // Number of lines matching the best format
	AmbiguityNote string        // Warning about the best match, if any
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format     *InputFormat
	Confidence float64 // 0.0 to 1.0 (fraction of sampled lines matched)
	MatchCount int     // Number of lines that matched
	SampleLine string  // Example line that matched
}

// Detector analyzes input files to identify which puzzle they belong to.
type Detector struct {
	formats    []*InputFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples an input file and returns detected formats.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of input lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{}

	stats := make(map[string]*FormatMatch)

	for _, line := range lines {
		if line == "" {
			result.BlankLines++
			continue
		}
		result.SampledLines++

		for _, format := range d.formats {
			if !format.Matches(line) {
				continue
			}
			m := stats[format.Name]
			if m == nil {
				m = &FormatMatch{Format: format, SampleLine: line}
				stats[format.Name] = m
			}
			m.MatchCount++
		}
	}

	if result.SampledLines == 0 {
		return result
	}

	for _, m := range stats {
		m.Confidence = float64(m.MatchCount) / float64(result.SampledLines)
		result.Matches = append(result.Matches, *m)
	}

	// Sort by confidence descending, then by declaration order (more specific first)
	order := make(map[string]int, len(d.formats))
	for i, f := range d.formats {
		order[f.Name] = i
	}
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return order[result.Matches[i].Format.Name] < order[result.Matches[j].Format.Name]
	})

	best := result.Matches[0]
	result.ParsedLines = best.MatchCount

	switch {
	case best.Format.Day == 1 && result.BlankLines == 0:
		result.AmbiguityNote = "No blank lines found in the sample; the whole input would be a single group."
	case best.Format.Day != 1 && result.BlankLines > 0:
		result.AmbiguityNote = "Blank lines found in the sample; they will be rejected as malformed records."
	}

	return result
}

// sampleFile reads up to sampleSize non-blank lines from a file.
// Unreadable lines are skipped.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	src := reader.NewFileSource(path)
	defer src.Close()

	var lines []string
	nonBlank := 0

	for nonBlank < d.sampleSize {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if reader.IsLineError(err) {
				continue
			}
			return nil, err
		}
		lines = append(lines, line.Text)
		if !line.IsBlank() {
			nonBlank++
		}
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
