package render

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Theme is the figure styling applied to every new figure.
type Theme struct {
	Style      string
	Background color.Color
	Grid       color.Color // nil means no grid
}

var themes = map[string]Theme{
	"darkgrid":  {Style: "darkgrid", Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff}, Grid: color.White},
	"whitegrid": {Style: "whitegrid", Background: color.White, Grid: color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}},
	"dark":      {Style: "dark", Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff}},
	"white":     {Style: "white", Background: color.White},
	"ticks":     {Style: "ticks", Background: color.White},
}

// NewTheme looks up a named style.
func NewTheme(style string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme style %q", style)
	}
	return t, nil
}

func (t Theme) apply(p *plot.Plot, grid bool) {
	if t.Background != nil {
		p.BackgroundColor = t.Background
	}
	if !grid || t.Grid == nil {
		return
	}
	g := plotter.NewGrid()
	g.Vertical.Color = t.Grid
	g.Vertical.Width = vg.Points(1)
	g.Horizontal.Color = t.Grid
	g.Horizontal.Width = vg.Points(1)
	p.Add(g)
}
