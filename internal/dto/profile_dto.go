package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ResumeContext   string    `json:"resume_context"`
	PreferredTrack  string    `json:"preferred_track"`
	ExperienceLevel string    `json:"experience_level"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileSummaryDTO is what the job view embeds: just enough to decide whether
// the match button should be live.
type ProfileSummaryDTO struct {
	PreferredTrack  string `json:"preferred_track"`
	ExperienceLevel string `json:"experience_level"`
	HasResume       bool   `json:"has_resume"`
}

type UpdateProfileRequest struct {
	ResumeContext   string `json:"resume_context"`
	PreferredTrack  string `json:"preferred_track"`
	ExperienceLevel string `json:"experience_level"`
}
