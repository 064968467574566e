// Package dataset reads headerless delimited files into column-indexed tables.
package dataset

import (
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Options describe the file format.
type Options struct {
	Separator rune
	Decimal   rune
}

// Request lists the columns to keep and which of them must be numbers.
type Request struct {
	Columns []int
	Numeric []int
}

// Load reads path and returns the requested columns in ascending column order.
func Load(path string, opts Options, req Request) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Column: -1, Row: -1, Err: err}
	}
	defer f.Close()
	return Read(f, path, opts, req)
}

// Read is Load on an already opened reader. name is used in errors.
func Read(r io.Reader, name string, opts Options, req Request) (*Table, error) {
	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}
	raw := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.WithDelimiter(sep),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if raw.Err != nil {
		return nil, &LoadError{Path: name, Column: -1, Row: -1, Err: raw.Err}
	}
	return build(raw, name, opts, req)
}

func build(raw dataframe.DataFrame, name string, opts Options, req Request) (*Table, error) {
	cols := ascending(req.Columns)
	width := raw.Ncol()
	for _, c := range cols {
		if c < 0 || c >= width {
			return nil, &LoadError{Path: name, Column: c, Row: -1, Err: ErrColumnRange}
		}
	}
	sel := raw.Select(cols)
	if sel.Err != nil {
		return nil, &LoadError{Path: name, Column: -1, Row: -1, Err: sel.Err}
	}
	rows := sel.Records()[1:]

	numeric := make(map[int]bool, len(req.Numeric))
	for _, c := range req.Numeric {
		numeric[c] = true
	}

	decimal := opts.Decimal
	if decimal == 0 {
		decimal = '.'
	}
	columns := make([]series.Series, len(cols))
	for j, c := range cols {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		if !numeric[c] {
			columns[j] = series.New(cells, series.String, columnName(c))
			continue
		}
		values := make([]float64, len(cells))
		for i, cell := range cells {
			v, err := parseNumber(cell, decimal)
			if err != nil {
				return nil, &LoadError{Path: name, Column: c, Row: i, Err: ErrNotNumeric}
			}
			values[i] = v
		}
		columns[j] = series.New(values, series.Float, columnName(c))
	}

	t := &Table{name: name, columns: cols, numeric: numeric}
	t.df = dataframe.New(columns...)
	if t.df.Err != nil {
		return nil, &LoadError{Path: name, Column: -1, Row: -1, Err: t.df.Err}
	}
	return t, nil
}

// parseNumber decodes cell with the given decimal character. Empty cells are NaN.
func parseNumber(cell string, decimal rune) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return math.NaN(), nil
	}
	if decimal != '.' {
		s = strings.Replace(s, string(decimal), ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// ascending returns the sorted, de-duplicated column list.
func ascending(cols []int) []int {
	out := append([]int(nil), cols...)
	sort.Ints(out)
	n := 0
	for i, c := range out {
		if i > 0 && c == out[n-1] {
			continue
		}
		out[n] = c
		n++
	}
	return out[:n]
}

func columnName(c int) string {
	return "X" + strconv.Itoa(c)
}
