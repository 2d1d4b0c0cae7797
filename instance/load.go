package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single matrix row (large SOP instances exceed bufio's 64 KiB default).
const maxLineSize = 16 << 20

// maxPrealloc caps capacity hints taken from the size line, which is untrusted.
const maxPrealloc = 1 << 12

// Load reads an SOP instance from the file at path.
// See the package documentation for the format.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads an SOP instance from r. name is recorded as the instance name.
//
// Steps:
//  1. First line: n (positive integer).
//  2. Next n lines: n tab-separated integers each, empty tokens skipped.
//  3. Remaining lines are ignored.
//
// Errors carry the 1-based line number and wrap one of the loading sentinels.
func Parse(r io.Reader, name string) (*Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		n      int
		matrix [][]int
		line   int
		err    error
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// 1. Size line.
	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}

		return nil, ErrEmpty
	}
	line = 1
	n, err = strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("line 1: %q: %w", sc.Text(), ErrBadSize)
	}

	// 2. Matrix rows.
	matrix = make([][]int, 0, min(n, maxPrealloc))
	for len(matrix) < n && sc.Scan() {
		line++
		row, rerr := parseRow(sc.Text(), n)
		if rerr != nil {
			return nil, fmt.Errorf("line %d: %w", line, rerr)
		}
		matrix = append(matrix, row)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if len(matrix) < n {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(matrix), n, ErrMissingRows)
	}

	return build(name, matrix), nil
}

// parseRow splits one tab-separated row and converts it to exactly n integers.
func parseRow(text string, n int) ([]int, error) {
	var (
		row = make([]int, 0, min(n, maxPrealloc))
		tok string
		v   int
		err error
	)
	for _, tok = range strings.Split(strings.TrimRight(text, "\r"), "\t") {
		if tok == "" {
			continue
		}
		v, err = strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("column %d: %q: %w", len(row)+1, tok, ErrBadToken)
		}
		row = append(row, v)
	}
	if len(row) != n {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(row), n, ErrRowLength)
	}

	return row, nil
}
