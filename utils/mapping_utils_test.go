package utils

import "testing"

func TestMapFinishToCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"White", "WH"},
		{" black ", "BK"},
		{"Satin Nickel", "SN"},
		{"satin-nickel", "SN"},
		{"Sílver", "SV"},
		{"Corten", "CORTEN"},
	}
	for _, tt := range tests {
		if got := MapFinishToCode(tt.in); got != tt.want {
			t.Errorf("MapFinishToCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapCodeToFinish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WH", "white"},
		{"gr", "grey"},
		{"RAL1015", "RAL 1015"},
		{"RAL", "RAL"},
		{"CORTEN", "CORTEN"},
	}
	for _, tt := range tests {
		if got := MapCodeToFinish(tt.in); got != tt.want {
			t.Errorf("MapCodeToFinish(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
