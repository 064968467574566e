// Package fields decodes the flat list of form values into typed plot specifications.
package fields

import "strings"

// PlotType selects a rendering strategy.
type PlotType int

const (
	// Unknown is any unrecognised type name. It renders as a line plot.
	Unknown PlotType = iota
	Point
	Bar
	Heatmap
	Map
	Line
)

var plotTypeNames = map[string]PlotType{
	"point":   Point,
	"bar":     Bar,
	"heatmap": Heatmap,
	"map":     Map,
	"line":    Line,
}

// ParsePlotType never fails: names outside the known set give Unknown.
func ParsePlotType(s string) PlotType {
	return plotTypeNames[strings.ToLower(strings.TrimSpace(s))]
}

func (t PlotType) String() string {
	switch t {
	case Point:
		return "point"
	case Bar:
		return "bar"
	case Heatmap:
		return "heatmap"
	case Map:
		return "map"
	case Line:
		return "line"
	}
	return "unknown"
}

// Overlayable reports whether plots of this type can share a figure.
func (t PlotType) Overlayable() bool {
	return t == Point || t == Line
}

// AxisConfig is shared by every spec of a run. Nil bounds mean auto.
type AxisConfig struct {
	XLabel string
	YLabel string
	MinX   *int
	MinY   *int
	MaxX   *int
	MaxY   *int
}

// PlotSpec describes how one dataset is drawn.
type PlotSpec struct {
	File    string
	Type    PlotType
	RawType string
	XColumn int
	YColumn int
	// Hue is the optional grouping column for bar plots.
	Hue       *int
	Rotation  int
	Color     string
	LineStyle string
	Label     string
	Box       bool
}

// Columns returns the column selection: x, y and the hue column when set.
func (s PlotSpec) Columns() []int {
	cols := []int{s.XColumn, s.YColumn}
	if s.Hue != nil {
		cols = append(cols, *s.Hue)
	}
	return cols
}

// NumericColumns returns the columns that must decode as numbers for the spec's type.
// Heatmaps need every selected column.
func (s PlotSpec) NumericColumns() []int {
	switch s.Type {
	case Bar, Map:
		return []int{s.YColumn}
	case Heatmap:
		return s.Columns()
	}
	return []int{s.XColumn, s.YColumn}
}

// Form is the decoded form: axis settings and one spec per file.
type Form struct {
	Axis  AxisConfig
	Specs []PlotSpec
}
