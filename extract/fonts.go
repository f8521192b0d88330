package extract

import "strings"

// Style markers embedded in PDF font names, e.g. "Helvetica-BoldOblique" or
// "TimesNewRomanPS-ItalicMT". Matching is case-insensitive substring search;
// font naming in the wild is too inconsistent for anything stricter.
var (
	boldMarkers   = []string{"bold", "black", "heavy", "semibold", "demibold"}
	italicMarkers = []string{"italic", "oblique"}
)

// IsBoldFont reports whether a font name indicates a bold weight
func IsBoldFont(name string) bool {
	return containsAnyFold(name, boldMarkers)
}

// IsItalicFont reports whether a font name indicates an italic or oblique face
func IsItalicFont(name string) bool {
	return containsAnyFold(name, italicMarkers)
}

func containsAnyFold(name string, markers []string) bool {
	lower := strings.ToLower(name)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
