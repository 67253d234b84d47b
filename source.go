package delimited

import (
	"bufio"
	"io"
)

// MaxLineSize is the longest line NewLineReader accepts
const MaxLineSize = 1024 * 1024

// LineReader represents a line source, ReadLine returns io.EOF once exhausted
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// NewLineReader creates a line source for supplied reader; the caller keeps ownership of reader
func NewLineReader(reader io.Reader) LineReader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &scannerReader{scanner: scanner}
}

type lines struct {
	items []string
	pos   int
}

func (l *lines) ReadLine() (string, error) {
	if l.pos >= len(l.items) {
		return "", io.EOF
	}
	line := l.items[l.pos]
	l.pos++
	return line, nil
}

// Lines creates in memory line source
func Lines(items ...string) LineReader {
	return &lines{items: items}
}
