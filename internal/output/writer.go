// Package output finalizes figures: axis limits, layout, image files and presentation.
package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"berkotech.co/csvplot/internal/fields"
	"berkotech.co/csvplot/internal/logging"
	"berkotech.co/csvplot/internal/render"
)

// Result is one finalized figure.
type Result struct {
	Figure *render.Figure
	// Path is where the image was written, empty when not saved.
	Path  string
	Image image.Image
}

// Title names the figure after its first dataset.
func (r Result) Title() string {
	if len(r.Figure.Specs) == 0 {
		return "Figure " + strconv.Itoa(r.Figure.Number)
	}
	return fmt.Sprintf("Figure %d: %s", r.Figure.Number, filepath.Base(r.Figure.Specs[0].File))
}

// Presenter shows finalized figures to the user.
type Presenter interface {
	Present(results []Result) error
}

// Writer applies the shared axis bounds and saves figures.
type Writer struct {
	Axis fields.AxisConfig
	Save bool
	// DirName is the subdirectory next to the input file, "out" by default.
	DirName string
	// Format is png or jpg.
	Format string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func (w *Writer) dirName() string {
	if w.DirName == "" {
		return "out"
	}
	return w.DirName
}

func (w *Writer) format() string {
	switch f := strings.ToLower(w.Format); f {
	case "jpg", "jpeg":
		return "jpg"
	}
	return "png"
}

// Finalize lays out and renders every figure in opening order, saving when enabled.
// Saving is all or nothing: every image is rendered and staged next to its
// target before the first one is moved into place, and a failure removes
// whatever this call already wrote.
func (w *Writer) Finalize(figs []*render.Figure) ([]Result, error) {
	width, height, dpi := w.Width, w.Height, w.DPI
	if width <= 0 {
		width = render.DefaultWidth
	}
	if height <= 0 {
		height = 4.8 * vg.Inch
	}
	if dpi <= 0 {
		dpi = 100
	}

	var pending []pendingImage
	used := map[string]int{}
	results := make([]Result, 0, len(figs))
	for _, fig := range figs {
		tightLayout(fig)
		applyBounds(fig, w.Axis)
		c := fig.Render(width, height, dpi)
		results = append(results, Result{Figure: fig, Image: c.Image()})
		if w.Save && len(fig.Specs) > 0 {
			pending = append(pending, pendingImage{
				result: len(results) - 1,
				canvas: c,
				path:   w.outputPath(fig.Specs[0].File, used),
			})
		}
	}
	if len(pending) == 0 {
		return results, nil
	}

	if err := w.stage(pending); err != nil {
		return nil, err
	}
	if err := commit(pending); err != nil {
		return nil, err
	}
	for _, p := range pending {
		res := &results[p.result]
		res.Path = p.path
		logging.Infof("saved figure %d to %s", res.Figure.Number, p.path)
	}
	return results, nil
}

// pendingImage is a rendered figure waiting to be saved.
type pendingImage struct {
	result int
	canvas *vgimg.Canvas
	path   string
	tmp    string
}

// stage creates the output directories and writes every image to a temporary
// file beside its target. On error all temporary files are removed.
func (w *Writer) stage(pending []pendingImage) error {
	for i := range pending {
		if err := os.MkdirAll(filepath.Dir(pending[i].path), 0755); err != nil {
			removeTemps(pending)
			return fmt.Errorf("create output dir: %w", err)
		}
		tmp, err := w.writeTemp(pending[i].canvas, pending[i].path)
		if err != nil {
			removeTemps(pending)
			return err
		}
		pending[i].tmp = tmp
	}
	return nil
}

// commit renames the staged files into place, undoing earlier renames on error.
func commit(pending []pendingImage) error {
	for i := range pending {
		if err := os.Rename(pending[i].tmp, pending[i].path); err != nil {
			for _, done := range pending[:i] {
				os.Remove(done.path)
			}
			removeTemps(pending[i:])
			return fmt.Errorf("save figure: %w", err)
		}
	}
	return nil
}

func removeTemps(pending []pendingImage) {
	for _, p := range pending {
		if p.tmp != "" {
			os.Remove(p.tmp)
		}
	}
}

// OutputPath returns <dir of src>/<dir>/<base of src without extension>.<ext>.
func OutputPath(src, dir, ext string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(src), dir, base+"."+ext)
}

// outputPath adds a _n suffix when a source contributes the first dataset of
// more than one figure.
func (w *Writer) outputPath(src string, used map[string]int) string {
	path := OutputPath(src, w.dirName(), w.format())
	used[path]++
	if n := used[path]; n > 1 {
		ext := filepath.Ext(path)
		path = strings.TrimSuffix(path, ext) + "_" + strconv.Itoa(n) + ext
	}
	return path
}

// writeTemp encodes c into a temporary file in the directory of path.
func (w *Writer) writeTemp(c *vgimg.Canvas, path string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("save figure: %w", err)
	}
	var wt io.WriterTo = vgimg.PngCanvas{Canvas: c}
	if w.format() == "jpg" {
		wt = vgimg.JpegCanvas{Canvas: c}
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("save figure: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("save figure: %w", err)
	}
	return f.Name(), nil
}

// tightLayout removes the gap between the data and the axes.
func tightLayout(fig *render.Figure) {
	fig.Plot.X.Padding = 0
	fig.Plot.Y.Padding = 0
}

// applyBounds sets each configured bound, leaving unset ones automatic.
func applyBounds(fig *render.Figure, axis fields.AxisConfig) {
	p := fig.Plot
	if axis.MinX != nil {
		p.X.Min = float64(*axis.MinX)
	}
	if axis.MaxX != nil {
		p.X.Max = float64(*axis.MaxX)
	}
	if axis.MinY != nil {
		p.Y.Min = float64(*axis.MinY)
	}
	if axis.MaxY != nil {
		p.Y.Max = float64(*axis.MaxY)
	}
}
