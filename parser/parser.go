package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/disentangle/lattice"
	"github.com/katalvlaran/disentangle/puzzle"
)

// Sentinel errors for puzzle text parsing.
var (
	// ErrNoPieces indicates input without any piece block.
	ErrNoPieces = errors.New("parser: no pieces defined")

	// ErrMissingField indicates a block lacking name, origin, or direction lines.
	ErrMissingField = errors.New("parser: missing field")

	// ErrEmptyPiece indicates a block whose rows contain no '1' cell.
	ErrEmptyPiece = errors.New("parser: piece has no cells")
)

const headerLines = 4

// Parse reads a whole puzzle definition from r.
func Parse(r io.Reader) (*puzzle.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}

	return ParseString(string(data))
}

// ParseString reads a whole puzzle definition from s.
func ParseString(s string) (*puzzle.State, error) {
	blocks := splitBlocks(s)
	if len(blocks) == 0 {
		return nil, ErrNoPieces
	}

	pls := make([]puzzle.Placement, 0, len(blocks))
	for i, b := range blocks {
		piece, err := parseBlock(b)
		if err != nil {
			return nil, fmt.Errorf("parser: block %d: %w", i+1, err)
		}
		pls = append(pls, puzzle.Place(piece, lattice.Zero))
	}

	st, err := puzzle.NewState(pls...)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return st, nil
}

// ReadFile parses the puzzle definition stored at path.
func ReadFile(path string) (*puzzle.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParsePiece reads a single piece block (without comments or blank lines).
func ParsePiece(block string) (*puzzle.Piece, error) {
	return parseBlock(splitLines(block))
}

// splitBlocks drops comment lines and groups the rest on blank lines.
func splitBlocks(s string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range splitLines(s) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}

	return lines
}

func parseBlock(lines []string) (*puzzle.Piece, error) {
	// Tolerate blank lines handed in through ParsePiece.
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	lines = kept

	if len(lines) < headerLines {
		return nil, fmt.Errorf("%w: need name, origin, row and column direction, got %d lines",
			ErrMissingField, len(lines))
	}

	name := strings.TrimSpace(lines[0])
	var hdr [3]lattice.Point
	for i, label := range [...]string{"origin", "row direction", "column direction"} {
		p, err := lattice.Parse(lines[1+i])
		if err != nil {
			return nil, fmt.Errorf("piece %q %s: %w", name, label, err)
		}
		hdr[i] = p
	}
	origin, rowDir, colDir := hdr[0], hdr[1], hdr[2]

	var points []lattice.Point
	lineOrigin := origin
	for _, row := range lines[headerLines:] {
		p := lineOrigin
		for _, ch := range strings.TrimRight(row, " \t") {
			if ch == '1' {
				points = append(points, p)
			}
			p = p.Add(rowDir)
		}
		lineOrigin = lineOrigin.Add(colDir)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPiece, name)
	}

	return puzzle.NewPiece(name, points), nil
}
