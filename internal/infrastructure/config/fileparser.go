package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

var (
	ErrMalformedLine  = errors.New("malformed line")
	ErrUnknownKey     = errors.New("not a valid key")
	ErrUnknownSection = errors.New("not a valid section")
	ErrInvalidValue   = errors.New("invalid value")
)

// ParseError locates a skipped line in a cutscene file
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one key/value pair together with the section it belongs to
type Record struct {
	Section string
	Key     string
	Value   string
	// NewSection is set on the first record after a section header.
	NewSection bool
	Line       int
}

// FileParser reads "[section]" headers and "key=value" lines.
// Blank lines and lines starting with '#' are ignored. A header that is not
// followed by any key produces no record.
type FileParser struct {
	name       string
	scanner    *bufio.Scanner
	line       int
	section    string
	newSection bool
	rec        Record
	diags      []error
}

// NewFileParser creates a parser reading from r. name is used in diagnostics.
func NewFileParser(name string, r io.Reader) *FileParser {
	return &FileParser{
		name:    name,
		scanner: bufio.NewScanner(r),
	}
}

// Next advances to the next record. It returns false at the end of input.
func (p *FileParser) Next() bool {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				p.Errorf("%w: unterminated section header %q", ErrMalformedLine, line)
				continue
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				p.Errorf("%w: empty section header", ErrMalformedLine)
				continue
			}
			p.section = name
			p.newSection = true
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			p.Errorf("%w: expected key=value, got %q", ErrMalformedLine, line)
			continue
		}

		p.rec = Record{
			Section:    p.section,
			Key:        strings.TrimSpace(key),
			Value:      strings.TrimSpace(val),
			NewSection: p.newSection,
			Line:       p.line,
		}
		p.newSection = false
		return true
	}
	return false
}

// Record returns the current record
func (p *FileParser) Record() Record {
	return p.rec
}

// Errorf reports a problem with the current line. The line is skipped by the
// caller; parsing continues.
func (p *FileParser) Errorf(format string, args ...any) {
	err := &ParseError{File: p.name, Line: p.line, Err: fmt.Errorf(format, args...)}
	log.Printf("[FileParser] %v", err)
	p.diags = append(p.diags, err)
}

// Diagnostics returns every problem reported so far
func (p *FileParser) Diagnostics() []error {
	return p.diags
}

// Err returns the first read error, if any
func (p *FileParser) Err() error {
	return p.scanner.Err()
}
