// Package vtcore is a headless virtual terminal emulator core: it
// consumes the output side of a PTY or a recorded session and
// maintains an in-memory grid of styled characters the way an
// ANSI-compatible video terminal would, without ever drawing a pixel.
//
// This package covers display-side emulation only. It does not
// manage a PTY, read keyboard input, keep scrollback, or rasterize
// anything; those are the caller's job. It exposes a feed sink that
// ingests characters and a set of observer queries over the grid,
// cursor, and dirty rows.
//
// # Quick Start
//
//	term, _ := vtcore.New(vtcore.WithSize(80, 24))
//	term.Feed("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.RowText(0))
//
// # Architecture
//
// Two subsystems do the work:
//
//   - [Parser]: Paul Williams' DEC ANSI parser state diagram, turning
//     a stream of Unicode scalar values into Print/Execute/Dispatch
//     actions.
//   - [Terminal]: the executor that applies those actions to the
//     active [Buffer], [Cursor], pen, charsets, modes, and tab stops.
//
// Terminal implements the action sink directly; Parser drives it rune
// by rune with no intermediate action buffer.
//
// # Dual Buffers
//
// Terminal owns two [Buffer] values, primary and alternate. DECSET
// 1047/1049 flips which one is active; 1049 additionally saves/
// restores the cursor and clears the alternate buffer on entry, the
// way full-screen applications (vim, less, htop) expect.
//
//	if term.IsAlternateScreen() {
//	    // a full-screen app has taken over the display
//	}
//
// # Cells and Pens
//
// Each grid position is a [Cell]: a base rune, any combining marks
// that attached to it, a [WidthMarker] distinguishing single/leading-
// wide/trailing-wide columns, and a [Pen] carrying foreground,
// background, and the SGR attribute bitset.
//
//	cell := term.Cell(row, col)
//	fmt.Printf("%c bold=%v fg=%+v\n", cell.Char, cell.Pen.Has(vtcore.AttrBold), cell.Pen.Fg)
//
// # Totality
//
// Feed never panics and never returns an error. Malformed sequences
// are swallowed by the parser's ignore states; out-of-range cursor
// motions clamp; unrecognized dispatch finals are no-ops. The only
// fallible entry points are [New] and [Terminal.Resize], which reject
// non-positive dimensions with [ErrInvalidDimensions].
package vtcore
