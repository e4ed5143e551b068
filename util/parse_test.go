package util

import "testing"

func TestTrailingInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"simple", "P1", 1, true},
		{"two digits", "P10", 10, true},
		{"large", "P1234", 1234, true},
		{"no digits", "init", 0, false},
		{"empty", "", 0, false},
		{"letter only", "P", 0, false},
		{"mixed suffix", "P1a", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TrailingInt(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TrailingInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
