// Package grid implements the in-memory character matrix a terminal
// session draws into before flushing a frame.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/termgrid/internal/ansi"
)

var (
	// ErrInvalidDimensions indicates a negative column or row count at
	// grid construction.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidCellContent indicates cell text wider than one visible
	// character once styling sequences are stripped.
	ErrInvalidCellContent = errors.New("cell content wider than one character")
)

// Cell is one character position in a Grid. It stores its text verbatim,
// styling sequences included; only the visible width is constrained.
type Cell struct {
	content string
}

// EmptyCell returns a cell holding a single space.
func EmptyCell() Cell {
	return Cell{content: " "}
}

// String returns the cell's stored text.
func (c Cell) String() string {
	return c.content
}

// Grid is a fixed-size, row-major matrix of Cells. Dimensions are set
// once at construction and never change.
type Grid struct {
	columns, rows int
	cells         [][]Cell
}

// New creates a grid of the given dimensions with every cell set to a
// space. Zero columns or rows are legal; negative values fail with
// ErrInvalidDimensions.
func New(columns, rows int) (*Grid, error) {
	if columns < 0 || rows < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, columns, rows)
	}
	g := &Grid{columns: columns, rows: rows}
	g.allocate()
	return g, nil
}

// allocate creates the cell matrix.
func (g *Grid) allocate() {
	g.cells = make([][]Cell, g.rows)
	for y := 0; y < g.rows; y++ {
		g.cells[y] = make([]Cell, g.columns)
		for x := 0; x < g.columns; x++ {
			g.cells[y][x] = EmptyCell()
		}
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (columns, rows int) {
	return g.columns, g.rows
}

// SetCell stores text at (x, y). Coordinates outside the grid are
// silently discarded and report success. Text whose visible length
// exceeds one code point fails with ErrInvalidCellContent and leaves the
// grid unchanged; otherwise the text is stored verbatim, styling
// sequences included.
func (g *Grid) SetCell(x, y int, text string) error {
	if x < 0 || x >= g.columns || y < 0 || y >= g.rows {
		return nil
	}
	if ansi.VisibleLength(text) > 1 {
		return fmt.Errorf("%w: %q", ErrInvalidCellContent, text)
	}
	g.cells[y][x] = Cell{content: text}
	return nil
}

// GetCell returns the cell at (x, y), or an empty cell for coordinates
// outside the grid.
func (g *Grid) GetCell(x, y int) Cell {
	if x < 0 || x >= g.columns || y < 0 || y >= g.rows {
		return EmptyCell()
	}
	return g.cells[y][x]
}

// Clear resets every cell to a space.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = EmptyCell()
		}
	}
}

// Render flattens the grid into a single string: each row's cells
// concatenated in column order, rows joined by a newline, top to bottom.
// The snapshot is always complete; there is no diffing against a
// previous frame.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.rows * (g.columns + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.columns; x++ {
			b.WriteString(g.cells[y][x].content)
		}
	}
	return b.String()
}
