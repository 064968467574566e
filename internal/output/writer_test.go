package output

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"berkotech.co/csvplot/internal/dataset"
	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/render"
)

func intp(v int) *int { return &v }

func figures(t *testing.T, files ...string) []*render.Figure {
	t.Helper()
	var (
		g render.Grouper
		d render.Dispatcher
	)
	for _, file := range files {
		spec := fields.PlotSpec{File: file, Type: fields.Bar, RawType: "bar", XColumn: 0, YColumn: 1}
		tbl, err := dataset.Read(strings.NewReader("a,1\nb,2\n"), file, dataset.Options{},
			dataset.Request{Columns: spec.Columns(), Numeric: spec.NumericColumns()})
		if err != nil {
			t.Fatal(err)
		}
		if err := d.Dispatch(g.Assign(spec), spec, tbl); err != nil {
			t.Fatal(err)
		}
	}
	return g.Figures()
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"/data/run.1.csv", "/data/out/run.1.png"},
		{"/data/plain", "/data/out/plain.png"},
		{"rel/x.txt", "rel/out/x.png"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.src, "out", "png"); got != filepath.FromSlash(tt.want) {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestFinalizeSaves(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "sub", "b.csv")
	figs := figures(t, a, b, a)

	w := &Writer{Save: true, Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 50}
	results, err := w.Finalize(figs)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	want := []string{
		filepath.Join(dir, "out", "a.png"),
		filepath.Join(dir, "sub", "out", "b.png"),
		filepath.Join(dir, "out", "a_2.png"),
	}
	if len(results) != len(want) {
		t.Fatalf("results = %d, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Path != want[i] {
			t.Errorf("result %d path = %q, want %q", i, r.Path, want[i])
		}
		f, err := os.Open(r.Path)
		if err != nil {
			t.Fatalf("open %s: %v", r.Path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", r.Path, err)
		}
		if got := img.Bounds().Dx(); got != 200 {
			t.Errorf("width = %d px, want 200", got)
		}
	}
	if results[0].Title() != "Figure 1: a.csv" {
		t.Errorf("title = %q", results[0].Title())
	}
}

func TestFinalizeWithoutSave(t *testing.T) {
	dir := t.TempDir()
	figs := figures(t, filepath.Join(dir, "a.csv"))
	results, err := (&Writer{}).Finalize(figs)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Path != "" || results[0].Image == nil {
		t.Errorf("result = %+v", results[0])
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Errorf("output dir created without save: %v", err)
	}
}

func TestApplyBounds(t *testing.T) {
	figs := figures(t, "a.csv")
	p := figs[0].Plot
	p.Y.Max = 99
	applyBounds(figs[0], fields.AxisConfig{MinX: intp(-1), MinY: intp(0)})
	if p.X.Min != -1 || p.Y.Min != 0 {
		t.Errorf("min bounds = %v %v", p.X.Min, p.Y.Min)
	}
	if p.Y.Max != 99 {
		t.Errorf("unset max changed: %v", p.Y.Max)
	}
}

func TestFinalizeSaveFailureLeavesNoImages(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "one", "a.csv")
	b := filepath.Join(dir, "two", "b.csv")
	if err := os.MkdirAll(filepath.Dir(b), 0755); err != nil {
		t.Fatal(err)
	}
	// a regular file where the second output directory should go
	if err := os.WriteFile(filepath.Join(dir, "two", "out"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	figs := figures(t, a, b)

	w := &Writer{Save: true, Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 50}
	if _, err := w.Finalize(figs); err == nil {
		t.Fatal("expected error for blocked output dir")
	}
	entries, err := os.ReadDir(filepath.Join(dir, "one", "out"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	for _, e := range entries {
		t.Errorf("left behind %s", e.Name())
	}
}
