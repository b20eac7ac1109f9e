package vtcore

import "strings"

// Run is a maximal span of consecutive cells on one row sharing a Pen.
// Trailing-wide spacer cells are absorbed into the preceding run's Text
// rather than emitted as their own run.
type Run struct {
	Text string
	Pen  Pen
}

// RowDump is one row's content as a sequence of style runs.
type RowDump struct {
	Runs []Run
}

// Dump is a point-in-time, run-length-encoded capture of the active
// screen: enough to render the grid without walking every cell when
// most of a row shares a single style.
type Dump struct {
	Rows      int
	Cols      int
	Cursor    CursorSnapshot
	AltScreen bool
	Lines     []RowDump
}

// CursorSnapshot captures cursor position and visibility at dump time.
type CursorSnapshot struct {
	Row     int
	Col     int
	Visible bool
}

// Dump captures the current active buffer as a run-length-encoded
// snapshot. It does not consume the dirty set — callers that want to
// know what changed since the last render should use ViewChanges.
func (t *Terminal) Dump() Dump {
	d := Dump{
		Rows:      t.rows,
		Cols:      t.cols,
		AltScreen: t.isAlt,
		Cursor: CursorSnapshot{
			Row:     t.cursor.Row,
			Col:     t.cursor.Col,
			Visible: t.CursorVisible(),
		},
		Lines: make([]RowDump, t.rows),
	}
	for row := 0; row < t.rows; row++ {
		d.Lines[row] = t.dumpRow(row)
	}
	return d
}

func (t *Terminal) dumpRow(row int) RowDump {
	var rd RowDump
	var text strings.Builder
	var pen Pen
	open := false

	flush := func() {
		if open {
			rd.Runs = append(rd.Runs, Run{Text: text.String(), Pen: pen})
			text.Reset()
			open = false
		}
	}

	for col := 0; col < t.cols; col++ {
		cell := t.active.Cell(row, col)
		if cell == nil {
			continue
		}
		if cell.Width == WidthTrailingWide {
			continue
		}

		if !open || cell.Pen != pen {
			flush()
			pen = cell.Pen
			open = true
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		text.WriteRune(ch)
		for _, m := range cell.Marks {
			text.WriteRune(m)
		}
	}
	flush()

	return rd
}
