package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadGrid parses marker text from r, one row per line.
// Trailing "\r" is stripped and blank lines at the end of input are ignored;
// every other line must have the same rune count.
func ReadGrid(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines)
}

// LoadFile reads a maze from the text file at path.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
