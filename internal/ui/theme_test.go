package ui

import (
	"image/color"
	"testing"
)

func TestBlend(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}

	tests := []struct {
		t    float32
		want color.NRGBA
	}{
		{0, a},
		{1, b},
		{0.5, color.NRGBA{R: 100, G: 100, B: 100, A: 255}},
		{-1, a},
		{2, b},
	}
	for _, tt := range tests {
		if got := Blend(a, b, tt.t); got != tt.want {
			t.Errorf("Blend(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestHostHiddenByDefault(t *testing.T) {
	h := NewHost(Options{Title: "test"}, nil)
	if h.Visible() {
		t.Error("new host is visible")
	}
	if ch := h.Close(); ch != nil {
		t.Error("Close on a hidden host returned a channel")
	}
	h.Hide()
}
