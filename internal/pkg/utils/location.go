package utils

import "strings"

// administrative unit markers: city, district, county, ward, town, township
var adminUnitMarkers = []string{"시", "구", "군", "동", "읍", "면"}

// SimplifyLocation reduces a free-form address to at most two
// administrative-unit tokens. An address without any such token is returned
// as is, and an empty or "-" address becomes "-".
func SimplifyLocation(loc string) string {
	if loc == "" || loc == "-" {
		return "-"
	}

	var kept []string
	for _, part := range strings.Fields(loc) {
		if containsAny(part, adminUnitMarkers) {
			kept = append(kept, part)
			if len(kept) == 2 {
				break
			}
		}
	}

	if len(kept) == 0 {
		return loc
	}
	return strings.Join(kept, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// OrDash returns "-" for nil or empty strings.
func OrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
