package render

import (
	"gonum.org/v1/plot/vg"

	"berkotech.co/csvplot/internal/fields"
)

// Grouper assigns specs to figures. Consecutive point and line specs share a figure;
// every other type gets a figure of its own.
type Grouper struct {
	Theme Theme
	Width vg.Length

	current *Figure
	figures []*Figure
}

// Assign returns the figure spec draws into, opening a new one when needed.
func (g *Grouper) Assign(spec fields.PlotSpec) *Figure {
	if g.current == nil || !spec.Type.Overlayable() || !g.current.Overlayable() {
		g.current = newFigure(len(g.figures)+1, spec.Type, g.Theme, g.Width)
		g.figures = append(g.figures, g.current)
	}
	g.current.Specs = append(g.current.Specs, spec)
	return g.current
}

// Figures returns the figures in opening order.
func (g *Grouper) Figures() []*Figure {
	return g.figures
}
