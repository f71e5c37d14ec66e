package utils

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1h 2m 3s"},
		{"PT45S", "45s"},
		{"PT0S", "0s"},
		{"PT2H", "2h"},
		{"PT1H30M", "1h 30m"},
		{"PT3M", "3m"},
		{"PT2H5S", "2h 5s"},
		{"PT", "0s"},
		{"", "Unknown duration"},
		{"not a duration", "Unknown duration"},
		{"1h 2m 3s", "Unknown duration"},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			got := FormatDuration(tt.iso)
			if got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}
