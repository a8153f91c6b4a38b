package cli

import (
	"strings"
	"testing"
)

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		sections int
		cached   bool
		want     []string
		notWant  []string
	}{
		{"fresh", 12, 3, false, []string{"12 points", "3 sections", iconFresh}, []string{iconCached}},
		{"cached", 12, 3, true, []string{"12 points", iconCached}, []string{iconFresh}},
		{"single point", 1, 0, false, []string{"1 point"}, []string{"sections"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statsLine(tt.points, tt.sections, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("statsLine() = %q, want it to contain %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("statsLine() = %q, should not contain %q", got, w)
				}
			}
		})
	}
}
