package ui

import "testing"

func TestClampWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, DefaultWidth},
		{-3, DefaultWidth},
		{40, 40},
		{MaxWidth, MaxWidth},
		{250, MaxWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.width); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestBase_SetSize(t *testing.T) {
	var b Base
	b.SetSize(80, 24)

	if w, h := b.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %d, %d, want 80, 24", w, h)
	}
	if b.Width() != 80 || b.Height() != 24 {
		t.Errorf("Width(), Height() = %d, %d, want 80, 24", b.Width(), b.Height())
	}
}
