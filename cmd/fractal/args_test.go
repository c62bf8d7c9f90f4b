package main

import "testing"

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in            string
		width, height int
		wantErr       bool
	}{
		{in: "100x100", width: 100, height: 100},
		{in: "2560x1440", width: 2560, height: 1440},
		{in: "1x1", width: 1, height: 1},
		{in: "100", wantErr: true},
		{in: "100x", wantErr: true},
		{in: "x100", wantErr: true},
		{in: "100x100x100", wantErr: true},
		{in: "-100x100", wantErr: true},
		{in: "axb", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		width, height, err := parseResolution(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseResolution(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (width != tt.width || height != tt.height) {
			t.Errorf("parseResolution(%q) = %dx%d, want %dx%d", tt.in, width, height, tt.width, tt.height)
		}
	}
}
