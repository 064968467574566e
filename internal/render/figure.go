package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgimg"

	"berkotech.co/csvplot/internal/fields"
)

// Figure is one rendering surface shared by one or more specs.
type Figure struct {
	// Number counts figures from 1 in opening order.
	Number int
	Plot   *plot.Plot
	Specs  []fields.PlotSpec
	// Width is the nominal output width, used to size bars.
	Width vg.Length
	// Aspect, when positive, is the width/height ratio of the data area.
	Aspect float64
	// LegendColumns is the number of legend columns; 0 hides the legend.
	LegendColumns int

	kind   fields.PlotType
	legend []legendEntry
}

type legendEntry struct {
	name   string
	thumbs []plot.Thumbnailer
}

// DefaultWidth is the nominal figure width when none is configured.
const DefaultWidth = 6.4 * vg.Inch

func newFigure(n int, kind fields.PlotType, theme Theme, width vg.Length) *Figure {
	if width <= 0 {
		width = DefaultWidth
	}
	p := plot.New()
	theme.apply(p, kind != fields.Map && kind != fields.Heatmap)
	return &Figure{Number: n, Plot: p, Width: width, kind: kind}
}

// Overlayable reports whether later point or line specs may draw onto this figure.
func (f *Figure) Overlayable() bool { return f.kind.Overlayable() }

// AddLegend records a legend entry. Empty names are skipped.
func (f *Figure) AddLegend(name string, thumbs ...plot.Thumbnailer) {
	if name == "" || len(thumbs) == 0 {
		return
	}
	f.legend = append(f.legend, legendEntry{name: name, thumbs: thumbs})
}

// LegendNames returns the legend labels in insertion order.
func (f *Figure) LegendNames() []string {
	names := make([]string, len(f.legend))
	for i, e := range f.legend {
		names[i] = e.name
	}
	return names
}

// Size returns the canvas size for a nominal w x h. With Aspect set, the data
// area gets that width/height ratio and the canvas shrinks around it to fit
// inside w x h. Axis and title margins keep their measured size.
func (f *Figure) Size(w, h vg.Length) (vg.Length, vg.Length) {
	if f.Aspect <= 0 {
		return w, h
	}
	da := f.Plot.DataCanvas(draw.Canvas{
		Canvas:    &recorder.Canvas{},
		Rectangle: vg.Rectangle{Max: vg.Point{X: w, Y: h}},
	})
	dw, dh := da.Max.X-da.Min.X, da.Max.Y-da.Min.Y
	if dw <= 0 || dh <= 0 {
		return w, h
	}
	mw, mh := w-dw, h-dh
	if float64(dw)/float64(dh) > f.Aspect {
		dw = vg.Length(float64(dh) * f.Aspect)
	} else {
		dh = vg.Length(float64(dw) / f.Aspect)
	}
	return dw + mw, dh + mh
}

// Render draws the figure with its legend on an image canvas.
func (f *Figure) Render(w, h vg.Length, dpi int) *vgimg.Canvas {
	w, h = f.Size(w, h)
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	dc := draw.New(c)
	f.Plot.Draw(dc)
	f.drawLegend(f.Plot.DataCanvas(dc))
	return c
}
