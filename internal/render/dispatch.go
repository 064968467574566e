// Package render draws plot specifications into figures.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"

	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/logging"
)

var errNoMapDrawer = errors.New("no map renderer configured")

// RenderError wraps a failure of a drawing step.
type RenderError struct {
	Spec fields.PlotSpec
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s plot of %s: %v", e.Spec.Type, e.Spec.File, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// MapDrawer draws country values onto a plot.
type MapDrawer interface {
	DrawMap(p *plot.Plot, countries []string, values []float64) error
}

// Dispatcher picks the rendering strategy for a spec.
type Dispatcher struct {
	Axis fields.AxisConfig
	Map  MapDrawer
	// Trend adds a least-squares fit line to point and line plots.
	Trend bool
}

// Dispatch draws spec's data into fig and applies the shared axis settings.
// Unknown plot types are drawn as line plots.
func (d *Dispatcher) Dispatch(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	var err error
	switch spec.Type {
	case fields.Point:
		err = d.point(fig, spec, tbl)
	case fields.Bar:
		err = d.bar(fig, spec, tbl)
	case fields.Heatmap:
		err = d.heatmap(fig, spec, tbl)
	case fields.Map:
		err = d.geo(fig, spec, tbl)
	case fields.Line:
		err = d.line(fig, spec, tbl)
	case fields.Unknown:
		logging.Debugf("plot type %q of %s drawn as line", spec.RawType, spec.File)
		err = d.line(fig, spec, tbl)
	default:
		err = d.line(fig, spec, tbl)
	}
	if err != nil {
		return &RenderError{Spec: spec, Err: err}
	}

	p := fig.Plot
	p.X.Label.Text = d.Axis.XLabel
	p.Y.Label.Text = d.Axis.YLabel
	p.Y.Tick.Label.Rotation = float64(spec.Rotation) * math.Pi / 180
	p.Y.Tick.Label.YAlign = text.YCenter
	fig.LegendColumns = 2
	return nil
}

func (d *Dispatcher) geo(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	if d.Map == nil {
		return errNoMapDrawer
	}
	countries, err := tbl.Strings(spec.XColumn)
	if err != nil {
		return err
	}
	values, err := tbl.Floats(spec.YColumn)
	if err != nil {
		return err
	}
	return d.Map.DrawMap(fig.Plot, countries, values)
}

func specColor(spec fields.PlotSpec) color.Color {
	c, ok := ParseColor(spec.Color)
	if !ok {
		if spec.Color != "" {
			logging.Warnf("unknown color %q for %s, using default", spec.Color, spec.File)
		}
		c = DefaultColor
	}
	return c
}
