package form

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"berkotech.co/csvplot/internal/config"
	"berkotech.co/csvplot/internal/fields"
)

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = keyType(tea.KeyTab)
	shiftTab = keyType(tea.KeyShiftTab)
	enter    = keyType(tea.KeyEnter)
	esc      = keyType(tea.KeyEsc)
	space    = keyType(tea.KeySpace)
	right    = keyType(tea.KeyRight)
	left     = keyType(tea.KeyLeft)
)

func TestPlotFormDefaults(t *testing.T) {
	files := []string{"/data/a.csv", "/data/b.csv"}
	m := newPlotForm(files)
	v := m.values()
	if len(v) != fields.HeaderFields+fields.DatasetFields*len(files) {
		t.Fatalf("values = %d", len(v))
	}
	wantSecond := []string{"0", "1", "", "0", "false", "line", "indianred", "solid", defaultLegend}
	if got := v[fields.HeaderFields+fields.DatasetFields:]; !reflect.DeepEqual(got, wantSecond) {
		t.Errorf("second block = %q, want %q", got, wantSecond)
	}

	form, err := fields.Parse(v, files)
	if err != nil {
		t.Fatalf("defaults do not parse: %v", err)
	}
	if len(form.Specs) != 2 || form.Specs[0].Type != fields.Line || form.Specs[0].Color != "dodgerblue" {
		t.Errorf("parsed specs = %+v", form.Specs)
	}
	if !strings.Contains(m.View(), "File: b.csv") {
		t.Error("view is missing the per-file heading")
	}
}

func TestPlotFormEditing(t *testing.T) {
	m := newPlotForm([]string{"a.csv"})
	m = send(m, typeText("time"), tab, typeText("value"))
	// jump to the box toggle of the first file: 6 header fields + x, y, hue, rotation
	for m.focus != fields.HeaderFields+4 {
		m = send(m, tab)
	}
	m = send(m, space, tab, right, right, tab, left)
	v := m.values()
	if v[0] != "time" || v[1] != "value" {
		t.Errorf("labels = %q %q", v[0], v[1])
	}
	block := v[fields.HeaderFields:]
	if block[4] != "true" {
		t.Errorf("box = %q, want true", block[4])
	}
	if block[5] != "bar" {
		t.Errorf("type = %q, want bar", block[5])
	}
	if block[6] != Colors[len(Colors)-1] {
		t.Errorf("colour = %q, want wrap to %q", block[6], Colors[len(Colors)-1])
	}
}

func TestFocusWraps(t *testing.T) {
	m := newFileForm(config.Job{Separator: ";", Decimal: ","})
	m = send(m, shiftTab)
	if m.focus != len(m.fields)-1 {
		t.Errorf("focus = %d, want last field", m.focus)
	}
	m = send(m, tab)
	if m.focus != 0 {
		t.Errorf("focus = %d, want 0", m.focus)
	}
}

func TestFileForm(t *testing.T) {
	defaults := config.Job{Separator: ";", Decimal: ","}
	m := newFileForm(defaults)
	m = send(m, typeText("a.csv; b.csv"), tab, tab, tab, space, enter)
	if !m.done || m.cancelled {
		t.Fatalf("done=%v cancelled=%v", m.done, m.cancelled)
	}
	job, err := jobFrom(m, defaults)
	if err != nil {
		t.Fatal(err)
	}
	want := config.Job{Files: []string{"a.csv", "b.csv"}, Separator: ";", Decimal: ",", Save: true}
	if !reflect.DeepEqual(job, want) {
		t.Errorf("job = %+v, want %+v", job, want)
	}

	if _, err := jobFrom(newFileForm(defaults), defaults); !errors.Is(err, ErrNoFiles) {
		t.Errorf("err = %v, want ErrNoFiles", err)
	}
}

func TestCancel(t *testing.T) {
	m := send(newFileForm(config.Job{}), esc)
	if !m.cancelled || m.done {
		t.Errorf("cancelled=%v done=%v", m.cancelled, m.done)
	}
}
