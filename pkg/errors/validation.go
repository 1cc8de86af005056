package errors

import (
	"strings"
	"unicode"
)

// Engineering parameter bounds used by the range validators below.
// These mirror common deep-excavation design practice: steeper anchors
// lose horizontal capacity, thinner walls cannot carry the wale loads.
const (
	MinInclinationDeg = 10.0
	MaxInclinationDeg = 30.0

	MinWallThickness = 0.6
	MaxWallThickness = 2.0
)

// ValidateLayoutName validates a user-supplied layout name for safety.
// Names end up in file paths and store keys, so the rules are conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences
//   - Maximum length of 256 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "layout name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "layout name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "layout name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "layout name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateConfigFilename validates a config filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateConfigFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "config filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "config filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "config filename cannot be a hidden file")
	}

	return nil
}

// CheckInclination reports whether an anchor inclination angle (degrees)
// falls inside the recommended design range. Out-of-range angles are a
// design smell rather than a structural error, so this returns a warning
// string instead of an error; empty means the angle is acceptable.
func CheckInclination(angleDeg float64) string {
	if angleDeg < MinInclinationDeg || angleDeg > MaxInclinationDeg {
		return "anchor inclination should be between 10 and 30 degrees"
	}
	return ""
}

// CheckWallThickness reports whether a wall thickness (meters) falls inside
// the recommended design range. Returns a warning string; empty means ok.
func CheckWallThickness(thickness float64) string {
	if thickness < MinWallThickness || thickness > MaxWallThickness {
		return "wall thickness should be between 0.6 and 2.0 meters"
	}
	return ""
}
