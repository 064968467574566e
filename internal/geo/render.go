package geo

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"

	"berkotech.co/csvplot/internal/logging"
)

// DefaultExtent is lon -150..60, lat -25..60.
var DefaultExtent = orb.Bound{Min: orb.Point{-150, -25}, Max: orb.Point{60, 60}}

// Renderer draws country values. Boundaries are loaded from Path on first use.
type Renderer struct {
	Path         string
	NameProperty string
	Extent       orb.Bound
	// SkipUnknown logs and skips names without boundaries instead of failing.
	SkipUnknown bool

	boundaries *Boundaries
}

// Normalize scales values to [0,1] ignoring NaNs. A constant series maps to 0.
func Normalize(values []float64) []float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	out := make([]float64, len(values))
	if len(present) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	lo, hi := floats.Min(present), floats.Max(present)
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = math.NaN()
		case hi > lo:
			out[i] = (v - lo) / (hi - lo)
		}
	}
	return out
}

func (r *Renderer) load() (*Boundaries, error) {
	if r.boundaries != nil {
		return r.boundaries, nil
	}
	if r.Path == "" {
		return nil, fmt.Errorf("map plots need a boundary file (map.boundaries)")
	}
	prop := r.NameProperty
	if prop == "" {
		prop = "ADMIN"
	}
	b, err := LoadBoundaries(r.Path, prop)
	if err != nil {
		return nil, err
	}
	logging.Debugf("loaded %d country boundaries from %s", b.Len(), r.Path)
	r.boundaries = b
	return b, nil
}

// DrawMap fills each country with a color for its value and labels it.
func (r *Renderer) DrawMap(p *plot.Plot, countries []string, values []float64) error {
	b, err := r.load()
	if err != nil {
		return err
	}
	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlGn", 9)
	if err != nil {
		return err
	}
	colors := pal.Colors()

	extent := r.Extent
	if extent == (orb.Bound{}) {
		extent = DefaultExtent
	}
	l := &layer{borders: b.all, extent: extent}
	norm := Normalize(values)
	for i, name := range countries {
		if i >= len(values) {
			break
		}
		shape, err := b.Lookup(name)
		if err != nil {
			if r.SkipUnknown {
				logging.Warnf("skipping %v", err)
				continue
			}
			return err
		}
		l.fills = append(l.fills, fill{
			shape: shape,
			color: colorFor(colors, norm[i]),
			label: strconv.FormatFloat(values[i], 'g', -1, 64),
			at:    labelPoint(shape),
		})
	}

	p.Add(l)
	p.X.Min, p.X.Max = extent.Min.Lon(), extent.Max.Lon()
	p.Y.Min, p.Y.Max = extent.Min.Lat(), extent.Max.Lat()
	p.X.Padding = 0
	p.Y.Padding = 0
	return nil
}

// colorFor maps a normalised value onto colors, high values towards the light end.
func colorFor(colors []color.Color, v float64) color.Color {
	if math.IsNaN(v) {
		return color.Gray{Y: 0xc0}
	}
	idx := len(colors) - 1 - int(math.Round(v*float64(len(colors)-1)))
	return colors[idx]
}
