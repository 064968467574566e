package render

import (
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/logging"
)

const (
	pointMarkerArea = 10
	lineMarkerArea  = 20
)

// markerRadius converts a marker area in square points to a glyph radius.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

// pairs zips xs and ys in row order, dropping rows where either is NaN or infinite.
func pairs(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	xys := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return xys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func xyData(spec fields.PlotSpec, tbl *dataset.Table) (plotter.XYs, error) {
	xs, err := tbl.Floats(spec.XColumn)
	if err != nil {
		return nil, err
	}
	ys, err := tbl.Floats(spec.YColumn)
	if err != nil {
		return nil, err
	}
	xys := pairs(xs, ys)
	if len(xys) == 0 {
		logging.Warnf("%s: no plottable rows in columns %d and %d", spec.File, spec.XColumn, spec.YColumn)
	}
	return xys, nil
}

func (d *Dispatcher) point(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	xys, err := xyData(spec, tbl)
	if err != nil || len(xys) == 0 {
		return err
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = specColor(spec)
	s.GlyphStyle.Radius = markerRadius(pointMarkerArea)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	fig.Plot.Add(s)
	fig.AddLegend(spec.Label, s)
	return d.trend(fig, spec, xys)
}

func (d *Dispatcher) line(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	xys, err := xyData(spec, tbl)
	if err != nil || len(xys) == 0 {
		return err
	}
	col := specColor(spec)
	dash, ok := ParseLineStyle(spec.LineStyle)
	if !ok && spec.LineStyle != "" {
		logging.Warnf("unknown line style %q for %s, using solid", spec.LineStyle, spec.File)
	}

	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = col
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Dashes = dash

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = col
	s.GlyphStyle.Radius = markerRadius(lineMarkerArea)
	s.GlyphStyle.Shape = draw.CircleGlyph{}

	fig.Plot.Add(l, s)
	fig.AddLegend(spec.Label, l, s)
	return d.trend(fig, spec, xys)
}
