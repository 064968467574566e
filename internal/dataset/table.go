package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// Table holds the selected columns of one file, addressed by source column index.
type Table struct {
	name    string
	df      dataframe.DataFrame
	columns []int
	numeric map[int]bool
}

// Name is the path the table was read from.
func (t *Table) Name() string { return t.name }

// Columns returns the source column indices in table order.
func (t *Table) Columns() []int { return append([]int(nil), t.columns...) }

// Len is the number of rows.
func (t *Table) Len() int { return t.df.Nrow() }

// Has reports whether source column c was loaded.
func (t *Table) Has(c int) bool {
	for _, col := range t.columns {
		if col == c {
			return true
		}
	}
	return false
}

// Floats returns column c as numbers. The column must have been requested as numeric.
func (t *Table) Floats(c int) ([]float64, error) {
	if !t.Has(c) {
		return nil, fmt.Errorf("%s: column %d not loaded", t.name, c)
	}
	if !t.numeric[c] {
		return nil, fmt.Errorf("%s: column %d not loaded as numeric", t.name, c)
	}
	return t.df.Col(columnName(c)).Float(), nil
}

// Strings returns column c as text.
func (t *Table) Strings(c int) ([]string, error) {
	if !t.Has(c) {
		return nil, fmt.Errorf("%s: column %d not loaded", t.name, c)
	}
	return t.df.Col(columnName(c)).Records(), nil
}

// NumericColumns returns the numeric source columns in table order.
func (t *Table) NumericColumns() []int {
	var cols []int
	for _, c := range t.columns {
		if t.numeric[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Matrix views the numeric columns as a rows x columns matrix.
func (t *Table) Matrix() mat.Matrix {
	names := make([]string, 0, len(t.columns))
	for _, c := range t.NumericColumns() {
		names = append(names, columnName(c))
	}
	return matrix{t.df.Select(names)}
}

type matrix struct {
	dataframe.DataFrame
}

func (m matrix) At(i, j int) float64 {
	return m.Elem(i, j).Float()
}

func (m matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
