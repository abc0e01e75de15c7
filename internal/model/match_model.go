package model

// MatchResult is what the external scoring service returns for one
// resume/job pair. It is never persisted; each request replaces the previous
// result in full.
type MatchResult struct {
	MatchScore     float64  `json:"match_score"` // 0-100
	IsRecommended  bool     `json:"is_recommended"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Reason         string   `json:"reason"`
}
