package reader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// FileSource implements Source for reading a single input file.
type FileSource struct {
	path string

	file    *os.File
	reader  *bufio.Reader
	lineNum int
	done    bool
}

// NewFileSource creates a Source reading lines from path.
// The file is opened on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next line of the file.
// Returns io.EOF once the file is exhausted; the file is closed at that point.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.reader == nil {
		if err := s.open(); err != nil {
			s.done = true
			return nil, err
		}
	}

	text, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.done = true
		_ = s.Close()
		return nil, &puzzle.InputError{Source: s.path, Reason: "reading input", Err: err}
	}
	if errors.Is(err, io.EOF) && text == "" {
		s.done = true
		if cerr := s.Close(); cerr != nil {
			return nil, fmt.Errorf("closing %s: %w", s.path, cerr)
		}
		return nil, io.EOF
	}

	s.lineNum++
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	if !utf8.ValidString(text) {
		return nil, &puzzle.InputError{
			Source:  s.path,
			LineNum: s.lineNum,
			Reason:  "line is not valid UTF-8",
		}
	}

	return &Line{
		Text:    text,
		Source:  s.path,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.reader = nil
	return err
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return &puzzle.InputError{Source: s.path, Reason: "opening input", Err: err}
	}
	s.file = f
	s.reader = bufio.NewReader(f)
	return nil
}
