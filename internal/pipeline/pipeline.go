// Package pipeline runs one plotting job from form values to finished figures.
package pipeline

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"gonum.org/v1/plot/vg"

	"berkotech.co/csvplot/internal/config"
	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/geo"
	"berkotech.co/csvplot/internal/logging"
	"berkotech.co/csvplot/internal/output"
	"berkotech.co/csvplot/internal/render"
)

// Run parses job.Fields, draws every dataset and finalizes the figures.
// Any error aborts the run and leaves no image behind. presenter may be nil.
func Run(job config.Job, cfg config.Config, presenter output.Presenter) ([]output.Result, error) {
	defer logging.TimeTrack(time.Now(), "pipeline")

	form, err := fields.Parse(job.Fields, job.Files)
	if err != nil {
		return nil, err
	}
	opts, err := loadOptions(job)
	if err != nil {
		return nil, err
	}
	theme, err := render.NewTheme(cfg.Theme.Style)
	if err != nil {
		return nil, err
	}

	width := vg.Length(cfg.Output.WidthIn) * vg.Inch
	g := &render.Grouper{Theme: theme, Width: width}
	d := &render.Dispatcher{
		Axis:  form.Axis,
		Trend: cfg.Render.Trend,
		Map:   mapRenderer(cfg.Map),
	}
	for _, spec := range form.Specs {
		fig := g.Assign(spec)
		tbl, err := dataset.Load(spec.File, opts, dataset.Request{
			Columns: spec.Columns(),
			Numeric: spec.NumericColumns(),
		})
		if err != nil {
			return nil, err
		}
		logging.Debugf("%s: %d rows, columns %v, %s plot into figure %d", spec.File, tbl.Len(), tbl.Columns(), spec.Type, fig.Number)
		if err := d.Dispatch(fig, spec, tbl); err != nil {
			return nil, err
		}
		logging.Debugf("figure %d legend: %q", fig.Number, fig.LegendNames())
	}

	w := &output.Writer{
		Axis:    form.Axis,
		Save:    job.Save,
		DirName: cfg.Output.Dir,
		Format:  cfg.Output.Format,
		Width:   width,
		Height:  vg.Length(cfg.Output.HeightIn) * vg.Inch,
		DPI:     cfg.Output.DPI,
	}
	results, err := w.Finalize(g.Figures())
	if err != nil {
		return nil, err
	}
	logging.Infof("%d dataset(s) drawn into %d figure(s)", len(form.Specs), len(results))
	if presenter != nil {
		if err := presenter.Present(results); err != nil {
			return results, err
		}
	}
	return results, nil
}

func loadOptions(job config.Job) (dataset.Options, error) {
	sep, err := config.ParseRune(job.Separator)
	if err != nil {
		return dataset.Options{}, fmt.Errorf("separator: %w", err)
	}
	dec, err := config.ParseRune(job.Decimal)
	if err != nil {
		return dataset.Options{}, fmt.Errorf("decimal character: %w", err)
	}
	return dataset.Options{Separator: sep, Decimal: dec}, nil
}

func mapRenderer(c config.MapConfig) *geo.Renderer {
	r := &geo.Renderer{
		Path:         c.Boundaries,
		NameProperty: c.NameProperty,
		SkipUnknown:  c.SkipUnknown,
		Extent:       geo.DefaultExtent,
	}
	if len(c.Extent) == 4 {
		r.Extent = orb.Bound{
			Min: orb.Point{c.Extent[0], c.Extent[2]},
			Max: orb.Point{c.Extent[1], c.Extent[3]},
		}
	}
	return r
}
