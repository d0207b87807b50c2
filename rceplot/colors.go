package rceplot

import (
	"image/color"
	"math"
)

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	conversion := 255.0
	if s == 0.0 {
		return uint8(conversion * v), uint8(conversion * v), uint8(conversion * v)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//seriesColor returns the color for the key-th of steps lines in a figure.
//Hues start at blue and go around the wheel, skipping the yellows, which are
//hard to see on white.
func seriesColor(key, steps int) color.RGBA {
	if steps < 1 {
		steps = 1
	}
	h := 220 + float64(key)*(260.0/float64(steps))
	h = math.Mod(h, 360)
	if h > 45 && h < 75 {
		h += 30
	}
	r, g, b := iHVS2RGB(h, 0.8, 0.9)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//gridColor is a light gray, so the grid stays in the background.
var gridColor = color.RGBA{R: 210, G: 210, B: 210, A: 255}
