package termgrid

import (
	"github.com/dshills/termgrid/internal/ansi"
	"github.com/dshills/termgrid/internal/grid"
)

// Sentinel errors returned by session operations. Wrapped values carry
// context; match with errors.Is.
var (
	// ErrInvalidDimensions indicates a negative column or row count
	// passed to New.
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrInvalidCellContent indicates SetCell text wider than one
	// visible character once styling sequences are stripped.
	ErrInvalidCellContent = grid.ErrInvalidCellContent

	// ErrPositionParse indicates a terminal reply to a cursor position
	// query that did not contain a recognizable report.
	ErrPositionParse = ansi.ErrPositionParse
)
