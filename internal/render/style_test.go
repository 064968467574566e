package render

import (
	"image/color"
	"reflect"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{"dodgerblue", color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}, true},
		{"IndianRed", color.RGBA{R: 0xcd, G: 0x5c, B: 0x5c, A: 0xff}, true},
		{"k", color.RGBA{A: 0xff}, true},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, true},
		{"", nil, false},
		{"notacolor", nil, false},
		{"#12", nil, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q) ok = %v", tt.in, ok)
			continue
		}
		if ok && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLineStyle(t *testing.T) {
	for _, s := range []string{"solid", "-", ""} {
		if d, _ := ParseLineStyle(s); d != nil {
			t.Errorf("%q should be solid, got %v", s, d)
		}
	}
	for _, s := range []string{"dashed", "--", "dashdot", "-.", "dotted", ":"} {
		d, ok := ParseLineStyle(s)
		if !ok || len(d) == 0 {
			t.Errorf("%q: dashes = %v ok = %v", s, d, ok)
		}
	}
	if _, ok := ParseLineStyle("wavy"); ok {
		t.Error("unknown style reported as known")
	}
}

func TestNewTheme(t *testing.T) {
	for _, s := range []string{"darkgrid", "whitegrid", "dark", "white", "ticks", "DarkGrid"} {
		if _, err := NewTheme(s); err != nil {
			t.Errorf("NewTheme(%q): %v", s, err)
		}
	}
	if _, err := NewTheme("neon"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestColumnsOf(t *testing.T) {
	tests := []struct {
		n, k int
		want [][]int
	}{
		{0, 2, nil},
		{1, 2, [][]int{{0}}},
		{3, 2, [][]int{{0, 1}, {2}}},
		{4, 2, [][]int{{0, 1}, {2, 3}}},
		{3, 0, nil},
	}
	for _, tt := range tests {
		if got := columnsOf(tt.n, tt.k); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("columnsOf(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
		}
	}
}
