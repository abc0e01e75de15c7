package dto

type MatchResultDTO struct {
	MatchScore     float64  `json:"match_score"`
	ScoreBand      string   `json:"score_band"` // high / medium / low
	IsRecommended  bool     `json:"is_recommended"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Reason         string   `json:"reason"`
}
