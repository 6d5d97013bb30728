package palette

import "math"

// RGB represents a color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Lab represents a color in the CIE L*a*b* color space (D65 illuminant).
//
// Components:
//   - L: lightness, nominally 0 (black) to 100 (white)
//   - A: green-red axis, nominally -128 to 127
//   - B: blue-yellow axis, nominally -128 to 127
//
// A and B may transiently exceed their nominal range during centroid
// arithmetic; LabToRGB clamps on the way back to the sRGB gamut.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// XYZ->Lab nonlinearity constants per the CIE definition.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// RGBToLab converts 8-bit sRGB components to CIE L*a*b*.
//
// The conversion decodes the sRGB gamma curve, applies the linear
// sRGB->XYZ matrix for D65 primaries, normalizes by the D65 white point
// and applies the standard XYZ->Lab nonlinearity. It is a total function:
// every input maps to a valid Lab value.
func RGBToLab(r, g, b uint8) Lab {
	rf := srgbDecode(float64(r) / 255.0)
	gf := srgbDecode(float64(g) / 255.0)
	bf := srgbDecode(float64(b) / 255.0)

	x := rf*0.4124 + gf*0.3576 + bf*0.1805
	y := rf*0.2126 + gf*0.7152 + bf*0.0722
	z := rf*0.0193 + gf*0.1192 + bf*0.9505

	fx := labForward(x / whiteX)
	fy := labForward(y / whiteY)
	fz := labForward(z / whiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToRGB converts a CIE L*a*b* color back to 8-bit sRGB.
//
// The inverse path reverses each step of RGBToLab exactly and re-encodes
// with sRGB gamma. Out-of-gamut results are clamped per channel to [0,255]
// with round-to-nearest, never wrapped, so the output is always a valid
// sRGB triple.
func LabToRGB(lab Lab) RGB {
	fy := (lab.L + 16.0) / 116.0
	fx := lab.A/500.0 + fy
	fz := fy - lab.B/200.0

	x := labInverse(fx) * whiteX
	y := labInverse(fy) * whiteY
	z := labInverse(fz) * whiteZ

	rf := x*3.2406 + y*-1.5372 + z*-0.4986
	gf := x*-0.9689 + y*1.8758 + z*0.0415
	bf := x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{
		R: clampChannel(srgbEncode(rf)),
		G: clampChannel(srgbEncode(gf)),
		B: clampChannel(srgbEncode(bf)),
	}
}

// srgbDecode applies the piecewise sRGB gamma decoding to a normalized
// channel value.
func srgbDecode(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// srgbEncode applies the piecewise sRGB gamma encoding to a linear
// channel value.
func srgbEncode(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1.0/2.4) - 0.055
	}
	return 12.92 * c
}

func labForward(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labInverse(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// clampChannel maps a normalized channel value to [0,255] with
// round-to-nearest.
func clampChannel(c float64) uint8 {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return uint8(c*255.0 + 0.5)
}
