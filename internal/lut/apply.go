package lut

// Apply maps one normalized RGB value through the table.
//
// Inputs are clamped to [0,1]. 3D tables interpolate trilinearly between
// the eight surrounding lattice points; 1D tables interpolate each
// channel independently along its curve.
func (l *LUT) Apply(r, g, b float64) (outR, outG, outB float64) {
	if l.Is3D {
		return apply3D(l, r, g, b)
	}
	return apply1D(l, r, g, b)
}

func apply3D(l *LUT, r, g, b float64) (float64, float64, float64) {
	size := l.Size
	rf := clamp01(r) * float64(size-1)
	gf := clamp01(g) * float64(size-1)
	bf := clamp01(b) * float64(size-1)

	r0, g0, b0 := int(rf), int(gf), int(bf)
	r1, g1, b1 := minInt(r0+1, size-1), minInt(g0+1, size-1), minInt(b0+1, size-1)

	dr := rf - float64(r0)
	dg := gf - float64(g0)
	db := bf - float64(b0)

	var out [3]float64
	for c := 0; c < 3; c++ {
		c000 := latticeValue(l, r0, g0, b0, c)
		c001 := latticeValue(l, r0, g0, b1, c)
		c010 := latticeValue(l, r0, g1, b0, c)
		c011 := latticeValue(l, r0, g1, b1, c)
		c100 := latticeValue(l, r1, g0, b0, c)
		c101 := latticeValue(l, r1, g0, b1, c)
		c110 := latticeValue(l, r1, g1, b0, c)
		c111 := latticeValue(l, r1, g1, b1, c)

		out[c] = c000*(1-dr)*(1-dg)*(1-db) +
			c001*(1-dr)*(1-dg)*db +
			c010*(1-dr)*dg*(1-db) +
			c011*(1-dr)*dg*db +
			c100*dr*(1-dg)*(1-db) +
			c101*dr*(1-dg)*db +
			c110*dr*dg*(1-db) +
			c111*dr*dg*db
	}
	return out[0], out[1], out[2]
}

func apply1D(l *LUT, r, g, b float64) (float64, float64, float64) {
	return curveValue(l, r, 0), curveValue(l, g, 1), curveValue(l, b, 2)
}

// latticeValue reads one channel of a 3D lattice point. The cube's data
// is red-fastest: index = ((b*size + g)*size + r).
func latticeValue(l *LUT, r, g, b, channel int) float64 {
	idx := ((b*l.Size+g)*l.Size+r)*3 + channel
	if idx < 0 || idx >= len(l.Data) {
		return 0
	}
	return l.Data[idx]
}

// curveValue interpolates one channel along a 1D curve.
func curveValue(l *LUT, v float64, channel int) float64 {
	pos := clamp01(v) * float64(l.Size-1)
	i0 := int(pos)
	i1 := minInt(i0+1, l.Size-1)
	frac := pos - float64(i0)

	v0 := l.Data[i0*3+channel]
	v1 := l.Data[i1*3+channel]
	return v0*(1-frac) + v1*frac
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
