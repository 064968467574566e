package render

import (
	"github.com/sajari/regression"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/logging"
)

// fitLine returns the end points of the least-squares line through xys.
func fitLine(xys plotter.XYs) (plotter.XYs, error) {
	r := new(regression.Regression)
	r.SetObserved("y")
	r.SetVar(0, "x")
	for _, p := range xys {
		r.Train(regression.DataPoint(p.Y, []float64{p.X}))
	}
	if err := r.Run(); err != nil {
		return nil, err
	}
	xmin, xmax := plotter.Range(plotter.XValues{XYer: xys})
	y0, err := r.Predict([]float64{xmin})
	if err != nil {
		return nil, err
	}
	y1, err := r.Predict([]float64{xmax})
	if err != nil {
		return nil, err
	}
	return plotter.XYs{{X: xmin, Y: y0}, {X: xmax, Y: y1}}, nil
}

// trend overlays a dashed fit line when enabled. Too few points is not an error.
func (d *Dispatcher) trend(fig *Figure, spec fields.PlotSpec, xys plotter.XYs) error {
	if !d.Trend {
		return nil
	}
	fit, err := fitLine(xys)
	if err != nil {
		logging.Debugf("no trend for %s: %v", spec.File, err)
		return nil
	}
	l, err := plotter.NewLine(fit)
	if err != nil {
		return err
	}
	l.LineStyle.Color = specColor(spec)
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	fig.Plot.Add(l)
	if spec.Label != "" {
		fig.AddLegend(spec.Label+" fit", l)
	}
	return nil
}
