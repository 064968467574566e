package fields

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// HeaderFields is the number of global values before the per-file blocks.
	HeaderFields = 6
	// DatasetFields is the number of values per file.
	DatasetFields = 9
)

var (
	errShort    = errors.New("not enough values")
	errTrailing = errors.New("unexpected trailing values")
	errNegative = errors.New("column index must not be negative")
)

// header is the positional layout of the global block.
type header struct {
	XLabel, YLabel string
	MinX, MinY     string
	MaxX, MaxY     string
}

// record is the positional layout of one per-file block.
type record struct {
	XColumn   string
	YColumn   string
	Hue       string
	Rotation  string
	Box       string
	Type      string
	Color     string
	LineStyle string
	Label     string
}

func decodeHeader(v []string) header {
	return header{XLabel: v[0], YLabel: v[1], MinX: v[2], MinY: v[3], MaxX: v[4], MaxY: v[5]}
}

func decodeRecord(v []string) record {
	return record{
		XColumn:   v[0],
		YColumn:   v[1],
		Hue:       v[2],
		Rotation:  v[3],
		Box:       v[4],
		Type:      v[5],
		Color:     v[6],
		LineStyle: v[7],
		Label:     v[8],
	}
}

// Parse decodes values, the flat form output, for the given files.
// The first HeaderFields values are the axis settings, then DatasetFields values per file
// in the order of files.
func Parse(values []string, files []string) (*Form, error) {
	if len(values) < HeaderFields {
		return nil, &ValidationError{Dataset: HeaderDataset, Err: errShort}
	}
	axis, err := parseHeader(decodeHeader(values[:HeaderFields]))
	if err != nil {
		return nil, err
	}

	rest := values[HeaderFields:]
	form := &Form{Axis: axis, Specs: make([]PlotSpec, 0, len(files))}
	for i, file := range files {
		lo := i * DatasetFields
		hi := lo + DatasetFields
		if hi > len(rest) {
			return nil, &ValidationError{Dataset: i, Err: fmt.Errorf("%w: have %d of %d", errShort, max(len(rest)-lo, 0), DatasetFields)}
		}
		spec, err := parseRecord(i, file, decodeRecord(rest[lo:hi]))
		if err != nil {
			return nil, err
		}
		form.Specs = append(form.Specs, spec)
	}
	if extra := len(rest) - len(files)*DatasetFields; extra > 0 {
		return nil, &ValidationError{Dataset: len(files), Err: fmt.Errorf("%w: %d", errTrailing, extra)}
	}
	return form, nil
}

func parseHeader(h header) (AxisConfig, error) {
	axis := AxisConfig{XLabel: h.XLabel, YLabel: h.YLabel}
	bounds := []struct {
		name string
		raw  string
		dst  **int
	}{
		{"min x", h.MinX, &axis.MinX},
		{"min y", h.MinY, &axis.MinY},
		{"max x", h.MaxX, &axis.MaxX},
		{"max y", h.MaxY, &axis.MaxY},
	}
	for _, b := range bounds {
		v, err := optionalInt(b.raw)
		if err != nil {
			return axis, &ValidationError{Dataset: HeaderDataset, Field: b.name, Value: b.raw, Err: err}
		}
		*b.dst = v
	}
	return axis, nil
}

func parseRecord(i int, file string, r record) (PlotSpec, error) {
	spec := PlotSpec{
		File:      file,
		Type:      ParsePlotType(r.Type),
		RawType:   r.Type,
		Color:     strings.TrimSpace(r.Color),
		LineStyle: strings.TrimSpace(r.LineStyle),
		Label:     r.Label,
	}
	var err error
	if spec.XColumn, err = column(r.XColumn); err != nil {
		return spec, &ValidationError{Dataset: i, Field: "x column", Value: r.XColumn, Err: err}
	}
	if spec.YColumn, err = column(r.YColumn); err != nil {
		return spec, &ValidationError{Dataset: i, Field: "y column", Value: r.YColumn, Err: err}
	}
	if spec.Hue, err = optionalInt(r.Hue); err != nil {
		return spec, &ValidationError{Dataset: i, Field: "hue", Value: r.Hue, Err: err}
	}
	if spec.Hue != nil && *spec.Hue < 0 {
		return spec, &ValidationError{Dataset: i, Field: "hue", Value: r.Hue, Err: errNegative}
	}
	if spec.Rotation, err = strconv.Atoi(strings.TrimSpace(r.Rotation)); err != nil {
		return spec, &ValidationError{Dataset: i, Field: "rotation", Value: r.Rotation, Err: err}
	}
	if spec.Box, err = flag(r.Box); err != nil {
		return spec, &ValidationError{Dataset: i, Field: "box", Value: r.Box, Err: err}
	}
	return spec, nil
}

func column(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// optionalInt treats an empty value as absent rather than zero.
func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func flag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
