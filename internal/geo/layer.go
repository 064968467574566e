package geo

import (
	"image/color"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type fill struct {
	shape orb.MultiPolygon
	color color.Color
	label string
	at    orb.Point
}

// layer is a plot.Plotter of country borders and filled countries.
type layer struct {
	borders []orb.MultiPolygon
	fills   []fill
	extent  orb.Bound
}

var borderStyle = draw.LineStyle{
	Color:  color.Gray{Y: 0x40},
	Width:  vg.Points(0.5),
	Dashes: []vg.Length{vg.Points(1), vg.Points(1.5)},
}

func (l *layer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	project := func(ring orb.Ring) []vg.Point {
		pts := make([]vg.Point, len(ring))
		for i, p := range ring {
			pts[i] = vg.Point{X: trX(p.Lon()), Y: trY(p.Lat())}
		}
		return pts
	}

	for _, f := range l.fills {
		for _, poly := range f.shape {
			if len(poly) == 0 {
				continue
			}
			c.FillPolygon(f.color, c.ClipPolygonXY(project(poly[0])))
		}
	}
	for _, mp := range l.borders {
		for _, poly := range mp {
			for _, ring := range poly {
				c.StrokeLines(borderStyle, c.ClipLinesXY(project(ring))...)
			}
		}
	}

	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(14)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	for _, f := range l.fills {
		pt := vg.Point{X: trX(f.at.Lon()), Y: trY(f.at.Lat())}
		if !c.Contains(pt) {
			continue
		}
		shadow := sty
		for _, d := range []vg.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
			c.FillText(shadow, pt.Add(d), f.label)
		}
		front := sty
		front.Color = color.White
		c.FillText(front, pt, f.label)
	}
}

func (l *layer) DataRange() (xmin, xmax, ymin, ymax float64) {
	return l.extent.Min.Lon(), l.extent.Max.Lon(), l.extent.Min.Lat(), l.extent.Max.Lat()
}

// labelPoint is the centroid of the largest polygon of mp.
func labelPoint(mp orb.MultiPolygon) orb.Point {
	var (
		best orb.Point
		area = -1.0
	)
	for _, poly := range mp {
		c, a := planar.CentroidArea(poly)
		if a = math.Abs(a); a > area {
			best, area = c, a
		}
	}
	return best
}
