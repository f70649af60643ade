// Place for pure domain logic: nothing here imports gin or gorm.
package core

import "strings"

// NormalizeName trims a display name and upper-cases its first letter.
// Used for team member and testimonial names entered through the admin panel.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NormalizeUsername trims surrounding whitespace; usernames are otherwise
// compared exactly as typed.
func NormalizeUsername(s string) string {
	return strings.TrimSpace(s)
}
