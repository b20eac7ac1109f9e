package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK,
// emoji), 1 for normal, 0 for zero-width (combining marks, control
// characters).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string (sum of
// rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
