package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/baxromumarov/scopedtls"
)

func TestRunRecordsSteps(t *testing.T) {
	tests := []struct {
		depth int
		want  []string
	}{
		{depth: 1, want: []string{"enter-1", "leave-1"}},
		{depth: 2, want: []string{"enter-1", "inner-2-steps-2", "leave-1"}},
		{depth: 3, want: []string{"enter-1", "inner-2-steps-3", "leave-1"}},
	}

	for _, tt := range tests {
		current := scopedtls.New[request]("current")

		got := run(current, 7, tt.depth)
		want := request{ID: 7, Steps: tt.want}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("depth %d (-want +got):\n%s", tt.depth, diff)
		}
		if current.IsSet() {
			t.Errorf("depth %d: slot still set after run", tt.depth)
		}
	}
}
