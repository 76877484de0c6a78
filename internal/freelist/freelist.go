// Package freelist reads freelist input files.
package freelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single freelist line.
const maxLineSize = 1024 * 1024

// InputError reports a freelist file that could not be read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read freelist file %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Load reads the file at path and returns its lines with trailing newline
// and carriage return characters removed. An empty file yields no lines and
// no error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &InputError{Path: path, Err: errors.New("is a directory")}
	}

	lines, err := Read(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return lines, nil
}

// Read returns the lines of r, one freelist per line.
// A leading UTF-8 byte order mark is dropped.
func Read(r io.Reader) ([]string, error) {
	var lines []string

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
