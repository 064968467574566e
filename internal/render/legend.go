package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const columnGap = vg.Length(12)

// columnsOf splits n entries column-major into at most k columns.
// Each column holds the entry indices it shows, the first column the longest.
func columnsOf(n, k int) [][]int {
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	per := (n + k - 1) / k
	var cols [][]int
	for start := 0; start < n; start += per {
		end := start + per
		if end > n {
			end = n
		}
		col := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			col = append(col, i)
		}
		cols = append(cols, col)
	}
	return cols
}

// drawLegend draws the legend in the upper right of the data area.
// Columns are laid out right to left so the last column touches the corner.
func (f *Figure) drawLegend(c draw.Canvas) {
	cols := columnsOf(len(f.legend), f.LegendColumns)
	var offset vg.Length
	for i := len(cols) - 1; i >= 0; i-- {
		l := plot.NewLegend()
		l.Top = true
		l.XOffs = -offset
		var widest vg.Length
		for _, idx := range cols[i] {
			e := f.legend[idx]
			l.Add(e.name, e.thumbs...)
			if w := l.TextStyle.Width(e.name); w > widest {
				widest = w
			}
		}
		l.Draw(c)
		offset += widest + l.ThumbnailWidth + columnGap
	}
}
