package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
)

// heatGrid shows a rows x columns matrix with row 0 at the top.
type heatGrid struct {
	m mat.Matrix
}

func (g heatGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g heatGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g heatGrid) X(c int) float64 { return float64(c) }
func (g heatGrid) Y(r int) float64 { return float64(r) }

// cellLabels writes every non-NaN value on its cell with three significant
// digits, white on the darker end of the scale. It returns nil for an empty grid.
func cellLabels(grid heatGrid, lo, hi float64) (*plotter.Labels, error) {
	var (
		xys    plotter.XYs
		labels []string
		dark   []bool
	)
	cols, rows := grid.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := grid.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			labels = append(labels, fmt.Sprintf("%.3g", v))
			dark = append(dark, (v-lo)/(hi-lo) > 0.6)
		}
	}
	if len(xys) == 0 {
		return nil, nil
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].XAlign = text.XCenter
		ann.TextStyle[i].YAlign = text.YCenter
		if dark[i] {
			ann.TextStyle[i].Color = color.White
		}
	}
	return ann, nil
}

// maxTickLabels caps the number of row ticks on tall heatmaps.
const maxTickLabels = 20

func (d *Dispatcher) heatmap(fig *Figure, spec fields.PlotSpec, tbl *dataset.Table) error {
	if tbl.Len() == 0 {
		return nil
	}
	m := mat.DenseCopyOf(tbl.Matrix())
	grid := heatGrid{m}
	cols, rows := grid.Dims()

	pal, err := brewer.GetPalette(brewer.TypeSequential, "Blues", 9)
	if err != nil {
		return err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if v := grid.Z(c, r); !math.IsNaN(v) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		return nil
	}
	if hi == lo {
		hi = lo + 1
	}
	h := plotter.NewHeatMap(grid, pal)
	h.Min, h.Max = lo, hi

	p := fig.Plot
	p.Add(h)
	ann, err := cellLabels(grid, lo, hi)
	if err != nil {
		return err
	}
	if ann != nil {
		p.Add(ann)
	}

	var xticks []plot.Tick
	for c, col := range tbl.NumericColumns() {
		xticks = append(xticks, plot.Tick{Value: float64(c), Label: strconv.Itoa(col)})
	}
	step := 1
	if rows > maxTickLabels {
		step = (rows + maxTickLabels - 1) / maxTickLabels
	}
	var yticks []plot.Tick
	for row := 0; row < rows; row += step {
		yticks = append(yticks, plot.Tick{Value: float64(rows - 1 - row), Label: strconv.Itoa(row)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Padding = 0
	p.Y.Padding = 0

	if spec.Box {
		fig.Aspect = float64(cols) / float64(rows)
	}
	return nil
}
