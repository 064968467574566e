// Package form collects the run parameters through terminal forms.
package form

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"berkotech.co/csvplot/internal/config"
	"berkotech.co/csvplot/internal/fields"
)

// ErrCancelled is returned when the user leaves a form without confirming.
var ErrCancelled = errors.New("form cancelled")

// ErrNoFiles is returned when the file form is confirmed with an empty file list.
var ErrNoFiles = errors.New("no files selected")

// Colors offered per dataset; dataset i defaults to Colors[i % len(Colors)].
var Colors = []string{
	"dodgerblue", "indianred", "gold", "steelblue", "tomato", "slategray",
	"plum", "seagreen", "gray", "chocolate", "olive", "darkcyan", "indigo",
}

// LineStyles offered per dataset.
var LineStyles = []string{"solid", "dashed", "dashdot", "dotted"}

// PlotTypes offered per dataset.
var PlotTypes = []string{"line", "point", "bar", "map", "heatmap"}

const defaultLegend = "Enter Legend Label"

func newFileForm(defaults config.Job) model {
	m := newModel("Select file(s) you wish to plot", []field{
		textInput("Files", "", 60),
		textInput("Separator", defaults.Separator, 3),
		textInput("Decimal", defaults.Decimal, 3),
		toggle("Save to file", defaults.Save),
	})
	m.note = "Separate several files with ';'."
	return m
}

func jobFrom(m model, defaults config.Job) (config.Job, error) {
	v := m.values()
	job := defaults
	job.Files = config.SplitFiles(v[0])
	job.Separator = v[1]
	job.Decimal = v[2]
	job.Save = v[3] == "true"
	if len(job.Files) == 0 {
		return job, ErrNoFiles
	}
	return job, nil
}

func newPlotForm(files []string) model {
	fs := []field{
		textInput("X-axis label", "", 30),
		textInput("Y-axis label", "", 30),
		textInput("Min X", "", 6),
		textInput("Min Y", "", 6),
		textInput("Max X", "", 6),
		textInput("Max Y", "", 6),
	}
	for i, f := range files {
		block := []field{
			textInput("X", "0", 5),
			textInput("Y", "1", 5),
			textInput("Hue", "", 5),
			textInput("Rotation", "0", 5),
			toggle("Box", false),
			choice("Type", PlotTypes, "line"),
			choice("Colour", Colors, Colors[i%len(Colors)]),
			choice("Line", LineStyles, LineStyles[0]),
			textInput("Legend", defaultLegend, 30),
		}
		block[0].section = fmt.Sprintf("File: %s", filepath.Base(filepath.Clean(f)))
		fs = append(fs, block...)
	}
	m := newModel("Plot settings", fs)
	m.note = fmt.Sprintf("%d header values, then %d per file. Empty bounds and hue mean none.", fields.HeaderFields, fields.DatasetFields)
	return m
}

func run(m model) (model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	fm := final.(model)
	if fm.cancelled || !fm.done {
		return fm, ErrCancelled
	}
	return fm, nil
}

// SelectFiles asks for the data files, separator, decimal character and save flag.
func SelectFiles(defaults config.Job) (config.Job, error) {
	m, err := run(newFileForm(defaults))
	if err != nil {
		return defaults, err
	}
	return jobFrom(m, defaults)
}

// PlotFields asks for the axis settings and the per-file plot settings and returns
// them as the flat list fields.Parse decodes.
func PlotFields(files []string) ([]string, error) {
	m, err := run(newPlotForm(files))
	if err != nil {
		return nil, err
	}
	return m.values(), nil
}
