package palette

import "math"

// pow25to7 is 25^7, the reference chroma scale in the CIEDE2000 rotation
// and G factors.
const pow25to7 = 6103515625.0

// CIEDE2000 computes the CIE DE2000 color difference between two Lab
// colors.
//
// The result is symmetric, non-negative, and zero only for identical
// inputs. Values below roughly 1.0 are imperceptible to most observers;
// the engine treats 20.0 as "visually distinct" when selecting palette
// entries.
//
// The formula's piecewise hue rules (shortest-arc difference, wrap-aware
// averaging, the zero-chroma special cases) are exact conditional rules
// from the standard, not approximations; this implementation follows them
// branch for branch.
func CIEDE2000(c1, c2 Lab) float64 {
	chroma1 := math.Sqrt(c1.A*c1.A + c1.B*c1.B)
	chroma2 := math.Sqrt(c2.A*c2.A + c2.B*c2.B)
	chromaAvg := (chroma1 + chroma2) / 2.0

	chromaAvg7 := math.Pow(chromaAvg, 7)
	g := 0.5 * (1.0 - math.Sqrt(chromaAvg7/(chromaAvg7+pow25to7)))

	a1p := c1.A * (1.0 + g)
	a2p := c2.A * (1.0 + g)

	chroma1p := math.Sqrt(a1p*a1p + c1.B*c1.B)
	chroma2p := math.Sqrt(a2p*a2p + c2.B*c2.B)

	h1p := hueAngle(c1.B, a1p)
	h2p := hueAngle(c2.B, a2p)

	deltaL := c2.L - c1.L
	deltaC := chroma2p - chroma1p

	// Shortest-arc hue difference, wrapping at +/-180 degrees. Undefined
	// (zero) when either chroma vanishes.
	var deltah float64
	if chroma1p*chroma2p != 0 {
		diff := h2p - h1p
		switch {
		case math.Abs(diff) <= 180.0:
			deltah = diff
		case diff > 180.0:
			deltah = diff - 360.0
		default:
			deltah = diff + 360.0
		}
	}
	deltaH := 2.0 * math.Sqrt(chroma1p*chroma2p) * math.Sin(deltah*math.Pi/360.0)

	lAvg := (c1.L + c2.L) / 2.0
	chromaAvgP := (chroma1p + chroma2p) / 2.0

	// Wrap-aware hue average. When either chroma is exactly zero the
	// standard uses the plain sum of the hue angles.
	var hAvg float64
	if chroma1p*chroma2p == 0 {
		hAvg = h1p + h2p
	} else {
		sum := h1p + h2p
		switch {
		case math.Abs(h1p-h2p) <= 180.0:
			hAvg = sum / 2.0
		case sum < 360.0:
			hAvg = (sum + 360.0) / 2.0
		default:
			hAvg = (sum - 360.0) / 2.0
		}
	}

	hAvgRad := hAvg * math.Pi / 180.0
	t := 1.0 -
		0.17*math.Cos(hAvgRad-math.Pi/6.0) +
		0.24*math.Cos(2.0*hAvgRad) +
		0.32*math.Cos(3.0*hAvgRad+math.Pi/30.0) -
		0.20*math.Cos(4.0*hAvgRad-63.0*math.Pi/180.0)

	deltaTheta := 30.0 * math.Exp(-math.Pow((hAvg-275.0)/25.0, 2))
	chromaAvgP7 := math.Pow(chromaAvgP, 7)
	rc := 2.0 * math.Sqrt(chromaAvgP7/(chromaAvgP7+pow25to7))
	rt := -math.Sin(2.0*deltaTheta*math.Pi/180.0) * rc

	lAvg50 := lAvg - 50.0
	sl := 1.0 + (0.015*lAvg50*lAvg50)/math.Sqrt(20.0+lAvg50*lAvg50)
	sc := 1.0 + 0.045*chromaAvgP
	sh := 1.0 + 0.015*chromaAvgP*t

	dl := deltaL / sl
	dc := deltaC / sc
	dh := deltaH / sh

	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// hueAngle returns atan2(b, a) in degrees normalized to [0,360).
func hueAngle(b, a float64) float64 {
	deg := math.Atan2(b, a) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360.0
	}
	return deg
}
