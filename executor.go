package vtcore

// executor.go implements the sink interface on *Terminal: it is the
// half of the DEC ANSI parser state diagram that turns a dispatched
// action into a mutation of the active buffer, cursor, pen, or mode
// set. Parser drives these methods directly as it walks the state
// diagram; none of them is ever called with malformed state, since
// the diagram itself guarantees each fires only when well-formed.

var _ sink = (*Terminal)(nil)

// --- parser-facing plumbing -------------------------------------------------

func (t *Terminal) clear() {
	t.params.reset()
	t.intermediate = t.intermediate[:0]
}

func (t *Terminal) collect(r rune) {
	if len(t.intermediate) < 4 {
		t.intermediate = append(t.intermediate, r)
	}
}

func (t *Terminal) param(r rune) {
	switch r {
	case ';':
		t.params.separate()
	case ':':
		t.params.subSeparate()
	default:
		if r >= '0' && r <= '9' {
			t.params.digit(r - '0')
		}
	}
}

func (t *Terminal) hasIntermediate(r rune) bool {
	for _, c := range t.intermediate {
		if c == r {
			return true
		}
	}
	return false
}

func (t *Terminal) hook()          {}
func (t *Terminal) put(r rune)     {}
func (t *Terminal) unhook()        {}
func (t *Terminal) oscStart()      {}
func (t *Terminal) oscPut(r rune)  {}
func (t *Terminal) oscEnd()        {}
func (t *Terminal) apcStart()      {}
func (t *Terminal) apcPut(r rune)  {}
func (t *Terminal) apcEnd()        {}

// --- Print -------------------------------------------------------------

func (t *Terminal) print(r rune) {
	translated := translate(t.charsets[t.gl], r)
	w := runeWidth(translated)
	if w == 0 {
		t.attachCombining(translated)
		return
	}
	if t.cursor.PendingWrap {
		t.wrapLine()
	}
	if w == 2 {
		t.printWide(translated)
	} else {
		t.printNarrow(translated)
	}
	t.lastPrinted = translated
	t.hasPrinted = true
}

func (t *Terminal) attachCombining(mark rune) {
	col := t.cursor.Col
	if col == 0 && !t.cursor.PendingWrap {
		return
	}
	target := col - 1
	if t.cursor.PendingWrap {
		target = t.cols - 1
	}
	if target < 0 {
		return
	}
	if cell := t.active.Cell(t.cursor.Row, target); cell != nil && cell.Width == WidthTrailingWide && target > 0 {
		target--
	}
	cell := t.active.Cell(t.cursor.Row, target)
	if cell == nil {
		return
	}
	cell.Attach(mark)
	t.active.MarkDirty(t.cursor.Row)
}

func (t *Terminal) printNarrow(r rune) {
	if t.modes.Has(ModeInsert) {
		t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, 1, t.pen)
	}
	if cell := t.active.Cell(t.cursor.Row, t.cursor.Col); cell != nil {
		cell.Char = r
		cell.Marks = nil
		cell.Pen = t.pen
		cell.Width = WidthSingle
		t.active.MarkDirty(t.cursor.Row)
	}
	t.advanceCol(1)
}

func (t *Terminal) printWide(r rune) {
	if t.cursor.Col >= t.cols-1 && t.modes.Has(ModeAutoWrap) {
		if cell := t.active.Cell(t.cursor.Row, t.cursor.Col); cell != nil {
			cell.Reset(t.pen)
			t.active.MarkDirty(t.cursor.Row)
		}
		t.wrapLine()
	}
	if t.modes.Has(ModeInsert) {
		t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, 2, t.pen)
	}
	if lead := t.active.Cell(t.cursor.Row, t.cursor.Col); lead != nil {
		lead.Char = r
		lead.Marks = nil
		lead.Pen = t.pen
		lead.Width = WidthLeadingWide
	}
	if trail := t.active.Cell(t.cursor.Row, t.cursor.Col+1); trail != nil {
		trail.Char = 0
		trail.Marks = nil
		trail.Pen = t.pen
		trail.Width = WidthTrailingWide
	}
	t.active.MarkDirty(t.cursor.Row)
	t.advanceCol(2)
}

func (t *Terminal) advanceCol(n int) {
	t.cursor.Col += n
	if t.cursor.Col >= t.cols {
		if t.modes.Has(ModeAutoWrap) {
			t.cursor.Col = t.cols
			t.cursor.PendingWrap = true
		} else {
			t.cursor.Col = t.cols - 1
		}
	}
}

func (t *Terminal) wrapLine() {
	t.cursor.PendingWrap = false
	t.cursor.Col = 0
	top, bottom := t.active.ScrollRegion()
	if t.cursor.Row >= bottom {
		t.active.ScrollUp(top, bottom, 1, t.pen)
	} else {
		t.cursor.Row++
	}
}

// --- Execute (C0 controls) ----------------------------------------------

func (t *Terminal) execute(r rune) {
	switch r {
	case 0x08:
		t.bs()
	case 0x09:
		t.ht()
	case 0x0A, 0x0B, 0x0C:
		t.lf()
	case 0x0D:
		t.cursor.Col = 0
		t.cursor.PendingWrap = false
	case 0x0E:
		t.gl = CharsetSlotG1
	case 0x0F:
		t.gl = CharsetSlotG0
	}
}

func (t *Terminal) bs() {
	if t.cursor.Col == t.cols {
		t.cursor.PendingWrap = false
		if t.cursor.Col >= 2 {
			t.cursor.Col -= 2
		} else {
			t.cursor.Col = 0
		}
		return
	}
	if t.cursor.Col > 0 {
		t.cursor.Col--
	}
}

func (t *Terminal) ht() {
	c := t.tabs.Next(t.cursor.Col)
	if c > t.cols-1 {
		c = t.cols - 1
	}
	t.cursor.Col = c
}

func (t *Terminal) lf() {
	t.cursor.PendingWrap = false
	top, bottom := t.active.ScrollRegion()
	switch {
	case t.cursor.Row == bottom:
		t.active.ScrollUp(top, bottom, 1, t.pen)
	case t.cursor.Row < t.rows-1:
		t.cursor.Row++
	}
	if t.modes.Has(ModeLineFeedNewLn) {
		t.cursor.Col = 0
	}
}

// --- ESC dispatch --------------------------------------------------------

func (t *Terminal) escDispatch(final rune) {
	if len(t.intermediate) > 0 {
		switch t.intermediate[0] {
		case '(':
			t.designate(CharsetSlotG0, final)
		case ')':
			t.designate(CharsetSlotG1, final)
		case '*':
			t.designate(CharsetSlotG2, final)
		case '+':
			t.designate(CharsetSlotG3, final)
		case '#':
			if final == '8' {
				t.active.FillWithE()
			}
		}
		return
	}
	switch final {
	case 'D':
		t.ind()
	case 'E':
		t.ind()
		t.cursor.Col = 0
	case 'M':
		t.ri()
	case 'H':
		t.tabs.Set(t.cursor.Col)
	case '7':
		t.saveCursor()
	case '8':
		t.restoreCursor()
	case 'c':
		t.hardReset()
	}
}

func (t *Terminal) designate(slot CharsetSlot, final rune) {
	if final == '0' {
		t.charsets[slot] = CharsetDECSpecialGraphics
	} else {
		t.charsets[slot] = CharsetASCII
	}
}

func (t *Terminal) ind() {
	top, bottom := t.active.ScrollRegion()
	switch {
	case t.cursor.Row == bottom:
		t.active.ScrollUp(top, bottom, 1, t.pen)
	case t.cursor.Row < t.rows-1:
		t.cursor.Row++
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) ri() {
	top, bottom := t.active.ScrollRegion()
	if t.cursor.Row <= top {
		t.active.ScrollDown(top, bottom, 1, t.pen)
	} else {
		t.cursor.Row--
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) saveCursor() {
	s := SavedState{
		Row: t.cursor.Row, Col: t.cursor.Col, Pen: t.pen,
		OriginMode: t.modes.Has(ModeOrigin), AutoWrap: t.modes.Has(ModeAutoWrap),
		GL: t.gl, Charsets: t.charsets,
	}
	if t.isAlt {
		t.savedAlt = s
	} else {
		t.savedPrimary = s
	}
}

func (t *Terminal) restoreCursor() {
	s := t.savedPrimary
	if t.isAlt {
		s = t.savedAlt
	}
	t.cursor.Row, t.cursor.Col = s.Row, s.Col
	t.cursor.PendingWrap = false
	t.pen = s.Pen
	t.setMode(ModeOrigin, s.OriginMode)
	t.setMode(ModeAutoWrap, s.AutoWrap)
	t.gl = s.GL
	t.charsets = s.Charsets
	t.clampCursor()
}

func (t *Terminal) hardReset() {
	t.primary = NewBuffer(t.rows, t.cols)
	t.alt = NewBuffer(t.rows, t.cols)
	t.active = t.primary
	t.isAlt = false
	t.cursor = NewCursor()
	t.pen = Pen{}
	t.modes = NewModeSet()
	t.tabs = NewTabs(t.cols)
	t.charsets = [4]Charset{}
	t.gl = CharsetSlotG0
	t.savedPrimary = SavedState{}
	t.savedAlt = SavedState{}
	t.hasPrinted = false
}

// softReset implements DECSTR. Grounded on avt's soft_reset: resets
// cursor visibility, margins, insert/origin modes, pen, and charsets,
// but — unlike RIS — leaves buffer contents and tab stops untouched.
func (t *Terminal) softReset() {
	t.modes.Set(ModeCursorVisible)
	t.active.SetScrollRegion(0, t.rows-1)
	t.modes.Clear(ModeInsert)
	t.modes.Clear(ModeOrigin)
	t.pen = Pen{}
	t.charsets = [4]Charset{}
	t.gl = CharsetSlotG0
	t.cursor.PendingWrap = false
	t.savedPrimary = SavedState{}
	t.savedAlt = SavedState{}
}

// --- CSI dispatch --------------------------------------------------------

func p1(ps *params, i int) int {
	v := ps.Get(i, 1)
	if v <= 0 {
		v = 1
	}
	return int(v)
}

func p0(ps *params, i int) int {
	return int(ps.Get(i, 0))
}

func (t *Terminal) csiDispatch(final rune) {
	ps := &t.params

	if t.hasIntermediate('!') && final == 'p' {
		t.softReset()
		return
	}
	if t.hasIntermediate('?') && (final == 'h' || final == 'l') {
		t.decPrivate(ps, final == 'h')
		return
	}

	switch final {
	case '@':
		t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, p1(ps, 0), t.pen)
	case 'A':
		t.cursorUp(p1(ps, 0))
	case 'B':
		t.cursorDown(p1(ps, 0))
	case 'C':
		t.cursorForward(p1(ps, 0))
	case 'D':
		t.cursorBackward(p1(ps, 0))
	case 'E':
		t.cursorDown(p1(ps, 0))
		t.cursor.Col = 0
	case 'F':
		t.cursorUp(p1(ps, 0))
		t.cursor.Col = 0
	case 'G', '`':
		t.cha(p1(ps, 0))
	case 'H', 'f':
		t.cup(p1(ps, 0), p1(ps, 1))
	case 'I':
		for i := 0; i < p1(ps, 0); i++ {
			t.cursor.Col = t.tabs.Next(t.cursor.Col)
		}
		if t.cursor.Col > t.cols-1 {
			t.cursor.Col = t.cols - 1
		}
	case 'J':
		t.eraseDisplay(p0(ps, 0))
	case 'K':
		t.eraseLine(p0(ps, 0))
	case 'L':
		t.active.InsertLines(t.cursor.Row, t.scrollBottom(), p1(ps, 0), t.pen)
	case 'M':
		t.active.DeleteLines(t.cursor.Row, t.scrollBottom(), p1(ps, 0), t.pen)
	case 'P':
		t.active.DeleteChars(t.cursor.Row, t.cursor.Col, p1(ps, 0), t.pen)
	case 'S':
		top, bottom := t.active.ScrollRegion()
		t.active.ScrollUp(top, bottom, p1(ps, 0), t.pen)
	case 'T':
		top, bottom := t.active.ScrollRegion()
		t.active.ScrollDown(top, bottom, p1(ps, 0), t.pen)
	case 'W':
		t.ctc(p0(ps, 0))
	case 'X':
		t.eraseChars(p1(ps, 0))
	case 'Z':
		for i := 0; i < p1(ps, 0); i++ {
			t.cursor.Col = t.tabs.Prev(t.cursor.Col)
		}
	case 'a':
		t.cursorForward(p1(ps, 0))
	case 'b':
		t.rep(p1(ps, 0))
	case 'd':
		t.vpa(p1(ps, 0))
	case 'e':
		t.cursorDown(p1(ps, 0))
	case 'g':
		t.tbc(p0(ps, 0))
	case 'h':
		t.ansiMode(ps, true)
	case 'l':
		t.ansiMode(ps, false)
	case 'm':
		applySGR(&t.pen, ps)
	case 'r':
		t.setScrollRegion(int(ps.Get(0, 1)), int(ps.Get(1, int32(t.rows))))
	case 's':
		t.saveCursor()
	case 'u':
		t.restoreCursor()
	}
}

func (t *Terminal) scrollBottom() int {
	_, bottom := t.active.ScrollRegion()
	return bottom
}

// cursorUp implements CUU: clamped at the scroll region's top unless
// the cursor started above the region, in which case it is clamped at
// row 0 instead.
func (t *Terminal) cursorUp(n int) {
	top, _ := t.active.ScrollRegion()
	lo := top
	if t.cursor.Row < top {
		lo = 0
	}
	t.cursor.Row -= n
	if t.cursor.Row < lo {
		t.cursor.Row = lo
	}
	t.cursor.PendingWrap = false
}

// cursorDown implements CUD: clamped at the scroll region's bottom
// unless the cursor started below the region, in which case it is
// clamped at the last row instead.
func (t *Terminal) cursorDown(n int) {
	_, bottom := t.active.ScrollRegion()
	hi := bottom
	if t.cursor.Row > bottom {
		hi = t.rows - 1
	}
	t.cursor.Row += n
	if t.cursor.Row > hi {
		t.cursor.Row = hi
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) cursorForward(n int) {
	t.cursor.Col += n
	if t.cursor.Col > t.cols-1 {
		t.cursor.Col = t.cols - 1
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) cursorBackward(n int) {
	t.cursor.Col -= n
	if t.cursor.Col < 0 {
		t.cursor.Col = 0
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) cha(col int) {
	c := col - 1
	if c < 0 {
		c = 0
	}
	if c > t.cols-1 {
		c = t.cols - 1
	}
	t.cursor.Col = c
	t.cursor.PendingWrap = false
}

func (t *Terminal) vpa(row int) {
	top, bottom := t.active.ScrollRegion()
	base, lo, hi := 0, 0, t.rows-1
	if t.modes.Has(ModeOrigin) {
		base, lo, hi = top, top, bottom
	}
	r := base + row - 1
	if r < lo {
		r = lo
	}
	if r > hi {
		r = hi
	}
	t.cursor.Row = r
	t.cursor.PendingWrap = false
}

func (t *Terminal) cup(row, col int) {
	top, bottom := t.active.ScrollRegion()
	base, lo, hi := 0, 0, t.rows-1
	if t.modes.Has(ModeOrigin) {
		base, lo, hi = top, top, bottom
	}
	r := base + row - 1
	if r < lo {
		r = lo
	}
	if r > hi {
		r = hi
	}
	c := col - 1
	if c < 0 {
		c = 0
	}
	if c > t.cols-1 {
		c = t.cols - 1
	}
	t.cursor.Row, t.cursor.Col = r, c
	t.cursor.PendingWrap = false
}

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cols-1, t.pen)
		for r := t.cursor.Row + 1; r < t.rows; r++ {
			t.active.ClearRow(r, t.pen)
		}
	case 1:
		for r := 0; r < t.cursor.Row; r++ {
			t.active.ClearRow(r, t.pen)
		}
		t.active.ClearRowRange(t.cursor.Row, 0, t.cursor.Col, t.pen)
	case 2:
		t.active.ClearAll(t.pen)
	case 3:
		// erase scrollback: no-op, this implementation keeps none.
	}
}

func (t *Terminal) eraseLine(mode int) {
	switch mode {
	case 0:
		t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cols-1, t.pen)
	case 1:
		t.active.ClearRowRange(t.cursor.Row, 0, t.cursor.Col, t.pen)
	case 2:
		t.active.ClearRow(t.cursor.Row, t.pen)
	}
}

func (t *Terminal) eraseChars(n int) {
	t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cursor.Col+n-1, t.pen)
}

func (t *Terminal) tbc(mode int) {
	switch mode {
	case 0:
		t.tabs.Clear(t.cursor.Col)
	case 3:
		t.tabs.ClearAll()
	}
}

// ctc implements CSI Ps W, not present in real DEC terminals'
// original command set but in this one's CSI table: cursor
// tabulation control, aliasing HTS/TBC by column.
func (t *Terminal) ctc(mode int) {
	switch mode {
	case 0:
		t.tabs.Set(t.cursor.Col)
	case 2:
		t.tabs.Clear(t.cursor.Col)
	case 5:
		t.tabs.ClearAll()
	}
}

// rep implements CSI Ps b: repeat the last printed character Ps
// times. A no-op if nothing has been printed yet.
func (t *Terminal) rep(n int) {
	if !t.hasPrinted {
		return
	}
	for i := 0; i < n; i++ {
		t.print(t.lastPrinted)
	}
}

func (t *Terminal) setScrollRegion(top, bottom int) {
	t.active.SetScrollRegion(top-1, bottom-1)
	t.cursor.Row, t.cursor.Col = 0, 0
	if t.modes.Has(ModeOrigin) {
		top0, _ := t.active.ScrollRegion()
		t.cursor.Row = top0
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) ansiMode(ps *params, set bool) {
	for i := 0; i < ps.Len(); i++ {
		switch ps.Get(i, -1) {
		case 4:
			t.setMode(ModeInsert, set)
		case 20:
			t.setMode(ModeLineFeedNewLn, set)
		}
	}
}

func (t *Terminal) decPrivate(ps *params, set bool) {
	for i := 0; i < ps.Len(); i++ {
		switch ps.Get(i, -1) {
		case 1:
			t.setMode(ModeCursorKeys, set)
		case 6:
			t.setMode(ModeOrigin, set)
			t.homeCursorForOrigin()
		case 7:
			t.setMode(ModeAutoWrap, set)
		case 25:
			t.setMode(ModeCursorVisible, set)
		case 47, 1047:
			t.switchScreen(set)
		case 1048:
			if set {
				t.saveCursor()
			} else {
				t.restoreCursor()
			}
		case 1049:
			if set {
				t.saveCursor()
				t.switchScreen(true)
				t.active.ClearAll(t.pen)
			} else {
				t.switchScreen(false)
				t.restoreCursor()
			}
		}
	}
}

func (t *Terminal) setMode(m Mode, set bool) {
	if set {
		t.modes.Set(m)
	} else {
		t.modes.Clear(m)
	}
}

func (t *Terminal) homeCursorForOrigin() {
	top, _ := t.active.ScrollRegion()
	if t.modes.Has(ModeOrigin) {
		t.cursor.Row, t.cursor.Col = top, 0
	} else {
		t.cursor.Row, t.cursor.Col = 0, 0
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) switchScreen(toAlt bool) {
	if toAlt == t.isAlt {
		return
	}
	if toAlt {
		t.active = t.alt
		t.isAlt = true
		t.modes.Set(ModeAltScreen)
	} else {
		t.active = t.primary
		t.isAlt = false
		t.modes.Clear(ModeAltScreen)
	}
	t.active.MarkAllDirty()
	t.clampCursor()
}
