package errors

import (
	"strings"
	"testing"
)

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "north-wall-phase2", false},
		{"ValidWithSpaces", "north wall phase 2", false},
		{"Empty", "", true},
		{"Traversal", "../secrets", true},
		{"DoubleSlash", "a//b", true},
		{"Backslash", `a\b`, true},
		{"NullByte", "a\x00b", true},
		{"ControlChar", "a\tb", true},
		{"TooLong", strings.Repeat("x", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigFilename(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"site.toml", false},
		{"layout.json", false},
		{"", true},
		{"dir/site.toml", true},
		{`dir\site.toml`, true},
		{".hidden", true},
	}

	for _, tt := range tests {
		err := ValidateConfigFilename(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateConfigFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
	}
}

func TestCheckInclination(t *testing.T) {
	tests := []struct {
		angle    float64
		wantWarn bool
	}{
		{15, false},
		{10, false},
		{30, false},
		{9.9, true},
		{45, true},
		{-5, true},
	}

	for _, tt := range tests {
		warn := CheckInclination(tt.angle)
		if (warn != "") != tt.wantWarn {
			t.Errorf("CheckInclination(%v) = %q, wantWarn %v", tt.angle, warn, tt.wantWarn)
		}
	}
}

func TestCheckWallThickness(t *testing.T) {
	tests := []struct {
		thickness float64
		wantWarn  bool
	}{
		{0.8, false},
		{0.6, false},
		{2.0, false},
		{0.5, true},
		{2.5, true},
	}

	for _, tt := range tests {
		warn := CheckWallThickness(tt.thickness)
		if (warn != "") != tt.wantWarn {
			t.Errorf("CheckWallThickness(%v) = %q, wantWarn %v", tt.thickness, warn, tt.wantWarn)
		}
	}
}
