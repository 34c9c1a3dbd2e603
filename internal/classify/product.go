// Package classify infers which fuel product a vessel report sheet covers
// from the sheet's free-text name.
package classify

import (
	"regexp"
	"strings"
)

// Canonical product labels.
const (
	Mogas92 = "MOGAS 92 RON"
	Mogas95 = "MOGAS 95 RON"
	HSD     = "HSD"
	JetFuel = "JET FUEL"
	HOBC    = "HOBC"

	// Unknown is the display label for sheets no rule recognises. It is
	// never returned as a match.
	Unknown = "UNKNOWN"
)

// productPattern is the last-resort search once the keyword rules miss.
var productPattern = regexp.MustCompile(`MOGAS.*?RON|JET.*?FUEL|HSD|DIESEL|HOBC|OCTANE`)

// Product maps a sheet name to a canonical product label. Rules are applied
// in order and the first hit wins. ok is false when nothing matched.
func Product(sheetName string) (label string, ok bool) {
	name := strings.ToUpper(sheetName)

	switch {
	case strings.Contains(name, "MOGAS"):
		if strings.Contains(name, "92") {
			return Mogas92, true
		}
		return Mogas95, true
	case strings.Contains(name, "HSD") || strings.Contains(name, "DIESEL"):
		return HSD, true
	case strings.Contains(name, "JET"):
		return JetFuel, true
	case strings.Contains(name, "HOBC") || strings.Contains(name, "OCTANE"):
		return HOBC, true
	}

	if m := productPattern.FindString(name); m != "" {
		return strings.TrimSpace(m), true
	}
	return "", false
}
