// Package viewer shows finalized figures in a desktop window.
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"berkotech.co/csvplot/internal/output"
)

// Fyne presents figures as tabs of one window and blocks until it is closed.
type Fyne struct {
	Title string
}

// Present opens the window. It must be called from the main goroutine.
func (v Fyne) Present(results []output.Result) error {
	if len(results) == 0 {
		return nil
	}
	a := app.NewWithID("co.berkotech.csvplot")
	title := v.Title
	if title == "" {
		title = "csvplot"
	}
	w := a.NewWindow(title)

	tabs := container.NewAppTabs()
	var size fyne.Size
	for _, r := range results {
		img := canvas.NewImageFromImage(r.Image)
		img.FillMode = canvas.ImageFillContain
		b := r.Image.Bounds()
		img.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
		size = size.Max(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
		tabs.Append(container.NewTabItem(r.Title(), img))
	}
	w.SetContent(tabs)
	w.Resize(size.AddWidthHeight(20, 60))
	w.ShowAndRun()
	return nil
}

// None discards figures, for runs that only save images.
type None struct{}

func (None) Present([]output.Result) error { return nil }
