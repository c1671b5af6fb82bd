package leveldata

import (
	"fmt"
	"io"
	"strings"
)

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\n', '\r', '\t', '(', ')':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseToken reads a "d,d" cell.
func parseToken(tok string) (TexCoord, error) {
	if len(tok) != 3 || !isDigit(tok[0]) || tok[1] != ',' || !isDigit(tok[2]) {
		return TexCoord{}, fmt.Errorf("%w: bad cell %q", ErrMalformed, tok)
	}
	return TexCoord{X: int(tok[0] - '0'), Y: int(tok[2] - '0')}, nil
}

// Parse reads a text level: a sequence of "(x,y)" cells separated by
// whitespace. The first cell is placed at the grid origin.
func Parse(r io.Reader, grid Grid, cls Classifier) (*Level, error) {
	if grid.Columns <= 0 || grid.TileSize <= 0 {
		return nil, fmt.Errorf("%w: invalid grid %+v", ErrMalformed, grid)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	tokens := strings.FieldsFunc(string(data), isSeparator)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrMalformed)
	}

	coords := make([]TexCoord, 0, len(tokens))
	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		tc, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		coords = append(coords, tc)
		kinds = append(kinds, cls.Kind(tc))
	}

	level := &Level{Tiles: make([]Tile, 0, len(coords))}
	place(level, coords, kinds, grid, cls)
	return level, nil
}
