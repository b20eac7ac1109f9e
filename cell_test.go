package vtcore

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell()
	if c.Char != ' ' {
		t.Errorf("expected blank char, got %q", c.Char)
	}
	if c.Width != WidthSingle {
		t.Errorf("expected WidthSingle, got %v", c.Width)
	}
}

func TestCellReset(t *testing.T) {
	c := Cell{Char: 'X', Marks: []rune{'́'}, Width: WidthLeadingWide}
	pen := Pen{Fg: IndexedColor(1)}

	c.Reset(pen)

	if c.Char != ' ' {
		t.Errorf("expected blank char after reset, got %q", c.Char)
	}
	if c.Marks != nil {
		t.Errorf("expected marks cleared, got %v", c.Marks)
	}
	if c.Width != WidthSingle {
		t.Errorf("expected WidthSingle after reset, got %v", c.Width)
	}
	if c.Pen != pen {
		t.Errorf("expected reset to carry the fill pen, got %+v", c.Pen)
	}
}

func TestCellIsWide(t *testing.T) {
	lead := Cell{Width: WidthLeadingWide}
	trail := Cell{Width: WidthTrailingWide}
	single := Cell{Width: WidthSingle}

	if !lead.IsWide() {
		t.Error("expected leading-wide cell to report IsWide")
	}
	if lead.IsWideSpacer() {
		t.Error("expected leading-wide cell not to report IsWideSpacer")
	}
	if !trail.IsWideSpacer() {
		t.Error("expected trailing-wide cell to report IsWideSpacer")
	}
	if single.IsWide() || single.IsWideSpacer() {
		t.Error("expected single-width cell to report neither")
	}
}

func TestCellAttachCaps(t *testing.T) {
	c := Cell{Char: 'e'}
	for i := 0; i < maxCombiningMarks+5; i++ {
		c.Attach('́')
	}
	if len(c.Marks) != maxCombiningMarks {
		t.Errorf("expected marks capped at %d, got %d", maxCombiningMarks, len(c.Marks))
	}
}

func TestCellCopyIsIndependent(t *testing.T) {
	orig := Cell{Char: 'e', Marks: []rune{'́'}}
	dup := orig.Copy()
	dup.Marks[0] = '̂'

	if orig.Marks[0] == dup.Marks[0] {
		t.Error("expected Copy to detach the Marks backing array")
	}
}
