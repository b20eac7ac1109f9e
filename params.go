package vtcore

// maxParams bounds how many top-level (semicolon-separated) CSI/DCS
// parameters are collected; extras are dropped, matching real
// terminals' handling of pathologically long sequences.
const maxParams = 16

// maxParamValue is the saturating ceiling for any single numeric
// sub-parameter; ECMA-48 reserves larger values and most terminals
// clamp rather than overflow.
const maxParamValue = 65535

// params collects the numeric parameters of a CSI or DCS sequence.
// Each top-level parameter is itself a list of sub-parameters
// (colon-separated, used by the extended SGR color forms
// "38:5:N" / "38:2::R:G:B"); a parameter with no colons has exactly
// one sub-parameter.
type params struct {
	vals [maxParams][]int32
	n    int
}

func (p *params) reset() {
	for i := 0; i < p.n; i++ {
		p.vals[i] = p.vals[i][:0]
	}
	p.n = 0
}

// digit folds a decimal digit into the current sub-parameter of the
// current top-level parameter, starting the first parameter lazily.
func (p *params) digit(d int32) {
	if p.n == 0 {
		p.n = 1
		p.vals[0] = append(p.vals[0][:0], -1)
	}
	cur := p.vals[p.n-1]
	last := len(cur) - 1
	if cur[last] < 0 {
		cur[last] = 0
	}
	v := cur[last]*10 + d
	if v > maxParamValue {
		v = maxParamValue
	}
	cur[last] = v
	p.vals[p.n-1] = cur
}

// separate starts a new top-level parameter (';'). A leading ';' with
// no preceding digit implies an omitted first parameter, so the
// current slot must exist before the new one is pushed.
func (p *params) separate() {
	if p.n == 0 {
		p.n = 1
		p.vals[0] = append(p.vals[0][:0], -1)
	}
	if p.n >= maxParams {
		return
	}
	p.vals[p.n] = append(p.vals[p.n][:0], -1)
	p.n++
}

// subSeparate starts a new sub-parameter within the current top-level
// parameter (':').
func (p *params) subSeparate() {
	if p.n == 0 {
		p.n = 1
		p.vals[0] = append(p.vals[0][:0], -1)
	}
	p.vals[p.n-1] = append(p.vals[p.n-1], -1)
}

// Len returns the number of top-level parameters collected.
func (p *params) Len() int { return p.n }

// Get returns the i'th top-level parameter's first sub-value,
// substituting def when the parameter was omitted (never typed) or
// out of range. A present-but-empty parameter ("CSI ;5H" for the
// first slot) is also omitted, per ECMA-48.
func (p *params) Get(i int, def int32) int32 {
	if i < 0 || i >= p.n || len(p.vals[i]) == 0 || p.vals[i][0] < 0 {
		return def
	}
	return p.vals[i][0]
}

// Sub returns the j'th sub-parameter of the i'th top-level parameter.
func (p *params) Sub(i, j int, def int32) int32 {
	if i < 0 || i >= p.n || j < 0 || j >= len(p.vals[i]) || p.vals[i][j] < 0 {
		return def
	}
	return p.vals[i][j]
}

// SubLen returns how many sub-parameters the i'th top-level parameter
// carries.
func (p *params) SubLen(i int) int {
	if i < 0 || i >= p.n {
		return 0
	}
	return len(p.vals[i])
}

// HasSub reports whether the i'th parameter was written with
// colon sub-parameters (distinguishing "38:5:1" from the bare "5" a
// "38;5;1" split would produce at index 1).
func (p *params) HasSub(i int) bool {
	return p.SubLen(i) > 1
}
