package vtcore

// applySGR interprets a "CSI ... m" parameter list against pen,
// mutating it in place. A bare "CSI m" (no parameters at all) is
// equivalent to "CSI 0 m": reset everything.
func applySGR(pen *Pen, ps *params) {
	if ps.Len() == 0 {
		pen.Reset()
		return
	}
	for i := 0; i < ps.Len(); {
		code := ps.Get(i, 0)
		switch {
		case code == 0:
			pen.Reset()
			i++
		case code == 1:
			pen.Set(AttrBold)
			i++
		case code == 2:
			pen.Set(AttrFaint)
			i++
		case code == 3:
			pen.Set(AttrItalic)
			i++
		case code == 4:
			pen.Set(AttrUnderline)
			i++
		case code == 5 || code == 6:
			pen.Set(AttrBlink)
			i++
		case code == 7:
			pen.Set(AttrInverse)
			i++
		case code == 8:
			pen.Set(AttrConceal)
			i++
		case code == 9:
			pen.Set(AttrStrikethrough)
			i++
		case code == 21:
			pen.Unset(AttrBold)
			i++
		case code == 22:
			pen.Unset(AttrBold)
			pen.Unset(AttrFaint)
			i++
		case code == 23:
			pen.Unset(AttrItalic)
			i++
		case code == 24:
			pen.Unset(AttrUnderline)
			i++
		case code == 25:
			pen.Unset(AttrBlink)
			i++
		case code == 27:
			pen.Unset(AttrInverse)
			i++
		case code == 28:
			pen.Unset(AttrConceal)
			i++
		case code == 29:
			pen.Unset(AttrStrikethrough)
			i++
		case code >= 30 && code <= 37:
			pen.Fg = IndexedColor(uint8(code - 30))
			i++
		case code == 38:
			c, next := ps.readColor(i)
			pen.Fg = c
			i = next
		case code == 39:
			pen.Fg = DefaultColor()
			i++
		case code >= 40 && code <= 47:
			pen.Bg = IndexedColor(uint8(code - 40))
			i++
		case code == 48:
			c, next := ps.readColor(i)
			pen.Bg = c
			i = next
		case code == 49:
			pen.Bg = DefaultColor()
			i++
		case code == 58:
			// underline color: parsed to keep the param stream
			// aligned, but not represented in Pen.
			_, next := ps.readColor(i)
			i = next
		case code == 59:
			i++
		case code >= 90 && code <= 97:
			pen.Fg = IndexedColor(uint8(code-90) + 8)
			i++
		case code >= 100 && code <= 107:
			pen.Bg = IndexedColor(uint8(code-100) + 8)
			i++
		default:
			i++
		}
	}
}

// readColor decodes an extended-color parameter (38/48/58) starting
// at top-level index i, supporting both the semicolon form
// ("38;5;N" / "38;2;R;G;B") and the colon sub-parameter form
// ("38:5:N" / "38:2::R:G:B", with an optional empty colorspace id
// before R). It returns the decoded color and the index of the next
// unconsumed top-level parameter.
func (p *params) readColor(i int) (Color, int) {
	if p.HasSub(i) {
		mode := p.Sub(i, 1, -1)
		switch mode {
		case 5:
			return IndexedColor(uint8(p.Sub(i, 2, 0))), i + 1
		case 2:
			n := p.SubLen(i)
			if n < 4 {
				return DefaultColor(), i + 1
			}
			r := p.Sub(i, n-3, 0)
			g := p.Sub(i, n-2, 0)
			b := p.Sub(i, n-1, 0)
			return RGBColor(uint8(r), uint8(g), uint8(b)), i + 1
		default:
			return DefaultColor(), i + 1
		}
	}

	mode := p.Get(i+1, -1)
	switch mode {
	case 5:
		return IndexedColor(uint8(p.Get(i+2, 0))), i + 3
	case 2:
		r := p.Get(i+2, 0)
		g := p.Get(i+3, 0)
		b := p.Get(i+4, 0)
		return RGBColor(uint8(r), uint8(g), uint8(b)), i + 5
	default:
		return DefaultColor(), i + 1
	}
}
