package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/jamp/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		width       int
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "idle shows name and tagline",
			width:       80,
			wantContain: []string{"JAmp", "just another mp3 player"},
		},
		{
			name:        "source on the right",
			source:      "road.txt",
			width:       80,
			wantContain: []string{"JAmp", "just another mp3 player", "road.txt"},
		},
		{
			name:        "narrow drops the tagline first",
			source:      "a-rather-long-playlist-name.txt",
			width:       50,
			wantContain: []string{"JAmp", "a-rather-long"},
			wantAbsent:  []string{"just another"},
		},
		{
			name:        "very narrow shows only the name",
			source:      "road.txt",
			width:       10,
			wantContain: []string{"JAmp"},
			wantAbsent:  []string{"road.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutil.StripANSI(Render(tt.source, tt.width))

			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("Render() = %q, want it to contain %q", out, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(out, absent) {
					t.Errorf("Render() = %q, should not contain %q", out, absent)
				}
			}
		})
	}
}

func TestRender_FitsWidth(t *testing.T) {
	for _, width := range []int{20, 40, 80, 100} {
		out := Render(strings.Repeat("x", 200), width)
		if got := testutil.MeasureWidth(out); got > width {
			t.Errorf("Render() width = %d, want <= %d", got, width)
		}
	}
}

func TestRender_SourceRightAligned(t *testing.T) {
	out := testutil.StripANSI(Render("road.txt", 80))

	if !strings.HasSuffix(out, "road.txt ") {
		t.Errorf("Render() = %q, want source at the right edge", out)
	}
	if got := testutil.MeasureWidth(out); got != 80 {
		t.Errorf("Render() width = %d, want 80", got)
	}
}
