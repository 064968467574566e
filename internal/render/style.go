package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

// DefaultColor is used when a color token is empty or not recognised.
var DefaultColor color.Color = colornames.Dodgerblue

var shortColors = map[string]color.Color{
	"b": colornames.Blue,
	"g": colornames.Green,
	"r": colornames.Red,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
	"y": colornames.Yellow,
	"k": colornames.Black,
	"w": colornames.White,
}

// ParseColor resolves a CSS color name, a one-letter shorthand or #rrggbb.
func ParseColor(token string) (color.Color, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil, false
	}
	if c, ok := colornames.Map[token]; ok {
		return c, true
	}
	if c, ok := shortColors[token]; ok {
		return c, true
	}
	if strings.HasPrefix(token, "#") && len(token) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(token, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
		}
	}
	return nil, false
}

var dashes = map[string][]vg.Length{
	"solid":   nil,
	"-":       nil,
	"dashed":  {vg.Points(3.7), vg.Points(1.6)},
	"--":      {vg.Points(3.7), vg.Points(1.6)},
	"dashdot": {vg.Points(6.4), vg.Points(1.6), vg.Points(1), vg.Points(1.6)},
	"-.":      {vg.Points(6.4), vg.Points(1.6), vg.Points(1), vg.Points(1.6)},
	"dotted":  {vg.Points(1), vg.Points(1.65)},
	":":       {vg.Points(1), vg.Points(1.65)},
}

// ParseLineStyle returns the dash pattern for a line style token.
// Unknown tokens report false and mean solid.
func ParseLineStyle(token string) ([]vg.Length, bool) {
	d, ok := dashes[strings.ToLower(strings.TrimSpace(token))]
	return d, ok
}
