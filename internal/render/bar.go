package render

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
)

// barGroups is y aggregated by x category and hue.
type barGroups struct {
	Categories []string
	Hues       []string    // a single "" entry when there is no hue column
	Means      [][]float64 // [hue][category], NaN where the pair has no data
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// groupBars rounds ys to one decimal and averages them per (hue, category).
// Categories and hues keep their first-appearance order.
func groupBars(cats, hues []string, ys []float64) barGroups {
	var g barGroups
	catIdx := map[string]int{}
	hueIdx := map[string]int{}
	type key struct{ h, c int }
	sums := map[key]float64{}
	counts := map[key]int{}

	for i, y := range ys {
		if i >= len(cats) || math.IsNaN(y) {
			continue
		}
		c, ok := catIdx[cats[i]]
		if !ok {
			c = len(g.Categories)
			catIdx[cats[i]] = c
			g.Categories = append(g.Categories, cats[i])
		}
		hue := ""
		if hues != nil {
			hue = hues[i]
		}
		h, ok := hueIdx[hue]
		if !ok {
			h = len(g.Hues)
			hueIdx[hue] = h
			g.Hues = append(g.Hues, hue)
		}
		sums[key{h, c}] += round1(y)
		counts[key{h, c}]++
	}

	g.Means = make([][]float64, len(g.Hues))
	for h := range g.Hues {
		g.Means[h] = make([]float64, len(g.Categories))
		for c := range g.Categories {
			k := key{h, c}
			if counts[k] == 0 {
				g.Means[h][c] = math.NaN()
				continue
			}
			g.Means[h][c] = sums[k] / float64(counts[k])
		}
	}
	return g
}

// blues picks n colors from the dark end of the brewer Blues palette.
func blues(n int) ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeSequential, "Blues", 9)
	if err != nil {
		return nil, err
	}
	all := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		// spread over indices 8 down to 3
		idx := len(all) - 1
		if n > 1 {
			idx -= i * 5 / (n - 1)
		}
		out[i] = all[idx]
	}
	return out, nil
}

func (d *Dispatcher) bar(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	cats, err := tbl.Strings(spec.XColumn)
	if err != nil {
		return err
	}
	ys, err := tbl.Floats(spec.YColumn)
	if err != nil {
		return err
	}
	var hues []string
	if spec.Hue != nil {
		if hues, err = tbl.Strings(*spec.Hue); err != nil {
			return err
		}
	}
	g := groupBars(cats, hues, ys)
	if len(g.Categories) == 0 {
		return nil
	}
	colors, err := blues(len(g.Hues))
	if err != nil {
		return err
	}

	// 80% of the data area per category, split between the hue groups.
	dataWidth := fig.Width * 0.8
	width := dataWidth * 0.8 / vg.Length(len(g.Categories)) / vg.Length(len(g.Hues))
	for h, hue := range g.Hues {
		values, labels := barValues(g.Means[h])
		b, err := plotter.NewBarChart(values, width)
		if err != nil {
			return err
		}
		b.Color = colors[h]
		b.LineStyle.Width = 0
		b.Offset = (vg.Length(h) - vg.Length(len(g.Hues)-1)/2) * width
		fig.Plot.Add(b, &barLabels{bars: b, labels: labels})
		if spec.Hue != nil {
			fig.AddLegend(hue, b)
		}
	}
	fig.Plot.NominalX(g.Categories...)
	return nil
}

// barValues turns one hue's means into bar heights and their labels.
// Missing pairs get a zero bar and no label.
func barValues(means []float64) (plotter.Values, []string) {
	values := make(plotter.Values, len(means))
	labels := make([]string, len(means))
	for c, m := range means {
		if math.IsNaN(m) {
			continue
		}
		values[c] = m
		labels[c] = strconv.FormatFloat(m, 'g', 6, 64)
	}
	return values, labels
}

// barLabels writes each bar's value above it.
type barLabels struct {
	bars   *plotter.BarChart
	labels []string
}

func (l *barLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(8)),
		XAlign:  text.XCenter,
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	for i, v := range l.bars.Values {
		if l.labels[i] == "" {
			continue
		}
		pt := vg.Point{
			X: trX(l.bars.XMin+float64(i)) + l.bars.Offset,
			Y: trY(v) + vg.Points(2),
		}
		if !c.Contains(pt) {
			continue
		}
		c.FillText(sty, pt, l.labels[i])
	}
}
