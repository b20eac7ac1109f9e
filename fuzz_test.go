package vtcore

import (
	"testing"
	"unicode/utf8"
)

// FuzzFeed exercises spec.md §8's core totality property: Feed must
// never panic on any input, however malformed, and the cursor bounds
// and wide-cell pairing must hold afterward.
func FuzzFeed(f *testing.F) {
	f.Add("Hello, World!")
	f.Add("\x1b[31;1mred bold\x1b[0m")
	f.Add("\x1b[2J\x1b[H")
	f.Add("\x1b[?1049h\x1b[?1049l")
	f.Add("\x1b[38:2::10:20:30m")
	f.Add("\x1bP1$qm\x1b\\")
	f.Add("\x1b]0;title\x07")
	f.Add("\x1b[1;999999999999999999999H")
	f.Add(string([]byte{0x1b, '[', '?', '1', ';', '2', ';', '3', 'h'}))
	f.Add("中文\x1b[1;1H\b")
	f.Add(string(rune(0x9b)) + "1m")

	f.Fuzz(func(t *testing.T, s string) {
		term, err := New(WithSize(20, 10))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		term.Feed(s)

		row, col := term.CursorPos()
		if row < 0 || row >= term.Rows() {
			t.Fatalf("cursor row %d out of [0,%d)", row, term.Rows())
		}
		if col < 0 || col > term.Cols() {
			t.Fatalf("cursor col %d out of [0,%d]", col, term.Cols())
		}

		for r := 0; r < term.Rows(); r++ {
			for c := 0; c < term.Cols(); c++ {
				cell := term.Cell(r, c)
				if cell.Width == WidthTrailingWide && c == 0 {
					t.Fatalf("row %d: trailing-wide at col 0 has no leading cell", r)
				}
				if cell.Width == WidthTrailingWide {
					prev := term.Cell(r, c-1)
					if prev.Width != WidthLeadingWide {
						t.Fatalf("row %d col %d: trailing-wide not preceded by leading-wide", r, c)
					}
				}
			}
		}
	})
}

// FuzzFeedStreamingEquivalence exercises spec.md §8's streaming
// equivalence law: feeding a string whole must equal feeding it in
// two pieces split at an arbitrary rune boundary (Feed decodes each
// string on its own, so a split inside a UTF-8 sequence is not a split
// of the rune stream).
func FuzzFeedStreamingEquivalence(f *testing.F) {
	f.Add("\x1b[31mHello\x1b[0m\r\nWorld", 5)
	f.Add("\x1b[?1049h", 3)
	f.Add("\x1b[38;2;1;2;3m", 4)

	f.Fuzz(func(t *testing.T, s string, split int) {
		if len(s) == 0 {
			return
		}
		if split < 0 {
			split = -split
		}
		split = split % (len(s) + 1)
		for split > 0 && split < len(s) && !utf8.RuneStart(s[split]) {
			split--
		}

		whole, _ := New(WithSize(20, 10))
		whole.Feed(s)

		parts, _ := New(WithSize(20, 10))
		parts.Feed(s[:split])
		parts.Feed(s[split:])

		for r := 0; r < whole.Rows(); r++ {
			if whole.RowText(r) != parts.RowText(r) {
				t.Fatalf("split %d: row %d diverged: %q vs %q", split, r, whole.RowText(r), parts.RowText(r))
			}
		}
	})
}
