package vtcore

import "testing"

func TestDumpBasicRuns(t *testing.T) {
	term, _ := New(WithSize(10, 1))
	term.Feed("Hello")

	d := term.Dump()

	if d.Rows != 1 || d.Cols != 10 {
		t.Fatalf("expected 1x10, got %dx%d", d.Rows, d.Cols)
	}
	if len(d.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(d.Lines))
	}
	line := d.Lines[0]
	if len(line.Runs) != 1 {
		t.Fatalf("expected one run (default pen throughout), got %d", len(line.Runs))
	}
	if got, want := line.Runs[0].Text, "Hello     "; got != want {
		t.Errorf("run text = %q, want %q", got, want)
	}
}

func TestDumpSplitsRunsOnPenChange(t *testing.T) {
	term, _ := New(WithSize(5, 1))
	term.Feed("\x1b[31mX\x1b[0mY")

	d := term.Dump()
	line := d.Lines[0]

	if len(line.Runs) < 2 {
		t.Fatalf("expected at least 2 runs across the pen change, got %d", len(line.Runs))
	}
	if line.Runs[0].Text[0] != 'X' {
		t.Errorf("expected first run to start with X, got %q", line.Runs[0].Text)
	}
	if line.Runs[0].Pen.Fg != IndexedColor(1) {
		t.Errorf("expected first run's pen fg Indexed(1), got %+v", line.Runs[0].Pen)
	}
}

func TestDumpCapturesCursorAndAltScreen(t *testing.T) {
	term, _ := New(WithSize(10, 5))
	term.Feed("\x1b[?1049h")
	term.Feed("AB")

	d := term.Dump()

	if !d.AltScreen {
		t.Error("expected AltScreen true after entering the alternate buffer")
	}
	if d.Cursor.Row != 0 || d.Cursor.Col != 2 {
		t.Errorf("expected cursor at (0,2), got (%d,%d)", d.Cursor.Row, d.Cursor.Col)
	}
	if !d.Cursor.Visible {
		t.Error("expected cursor visible by default")
	}
}

func TestDumpDoesNotConsumeDirtySet(t *testing.T) {
	term, _ := New(WithSize(10, 3))
	term.Feed("X")

	term.Dump()

	if !term.HasDirty() {
		t.Error("expected Dump to leave the dirty set untouched")
	}
}

func TestDumpAbsorbsTrailingWideSpacer(t *testing.T) {
	term, _ := New(WithSize(10, 1))
	term.Feed("中")

	d := term.Dump()
	line := d.Lines[0]

	total := 0
	for _, r := range line.Runs {
		total += len([]rune(r.Text))
	}
	if total != 9 {
		t.Errorf("expected 9 runes (wide glyph + 8 trailing blanks, spacer cell skipped), got %d", total)
	}
}
