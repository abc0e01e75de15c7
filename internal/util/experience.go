package util

import "strings"

// Canonical experience-level buckets used in match request payloads.
const (
	ExperienceFresher = "Fresher"
	ExperienceJunior  = "Junior"
	ExperienceMid     = "Mid"
	ExperienceSenior  = "Senior"
)

// NormalizeExperienceLevel maps a free-text experience descriptor to one of the
// four canonical buckets. Matching is case-insensitive substring matching in
// priority order: the intern/fresher/entry check runs first, so a descriptor
// containing both "entry" and "senior" still resolves to Fresher. Unrecognized
// input falls through to Mid.
func NormalizeExperienceLevel(descriptor string) string {
	s := strings.ToLower(descriptor)
	switch {
	case strings.Contains(s, "intern"), strings.Contains(s, "fresher"), strings.Contains(s, "entry"):
		return ExperienceFresher
	case strings.Contains(s, "junior"):
		return ExperienceJunior
	case strings.Contains(s, "senior"):
		return ExperienceSenior
	default:
		return ExperienceMid
	}
}
