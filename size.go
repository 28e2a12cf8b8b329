package termgrid

// Size holds terminal dimensions in character cells.
type Size struct {
	Columns int
	Rows    int
}

// Dimensions reported by Session.Size when the session is not attached
// to a terminal.
const (
	fallbackColumns = 100
	fallbackRows    = 50
)

// probeSize implements the dimension probe: a detached device gets the
// fixed fallback without any OS query, an attached device reports its
// own dimensions verbatim. Nothing is cached; every call re-probes.
func probeSize(dev Device) (Size, error) {
	if !dev.IsTerminal() {
		return Size{Columns: fallbackColumns, Rows: fallbackRows}, nil
	}
	columns, rows, err := dev.Size()
	if err != nil {
		return Size{}, err
	}
	return Size{Columns: columns, Rows: rows}, nil
}
