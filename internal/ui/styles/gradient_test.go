package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_PreservesText(t *testing.T) {
	tests := []string{"", "J", "JAmp", "日本語", "naïve café"}
	for _, text := range tests {
		got := ansi.Strip(Gradient(text, lipgloss.Color("#5fafff"), lipgloss.Color("#f1a208")))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q, want %q", text, got, text)
		}
	}
}

func TestGradient_NonHexFallsBack(t *testing.T) {
	got := ansi.Strip(Gradient("JAmp", lipgloss.Color("39"), lipgloss.Color("#ffffff")))
	if got != "JAmp" {
		t.Errorf("Gradient() stripped = %q, want %q", got, "JAmp")
	}
}

func TestTheme_StylesCached(t *testing.T) {
	th := T()
	if th.S() != th.S() {
		t.Error("S() should return the same styles on every call")
	}
}
