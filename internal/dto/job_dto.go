package dto

import "time"

type JobDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	RequiredSkills  []string  `json:"required_skills"`
	ExperienceLevel string    `json:"experience_level"`
	JobType         string    `json:"job_type"`
	Description     string    `json:"description,omitempty"`
	PostedAt        string    `json:"posted_at"` // long date, e.g. "January 2, 2006"
	CreatedAt       time.Time `json:"created_at"`
}

// JobViewDTO is the job-detail page payload. Profile is nil for anonymous
// visitors and for authenticated users whose profile could not be read.
type JobViewDTO struct {
	Job             JobDTO             `json:"job"`
	Profile         *ProfileSummaryDTO `json:"profile,omitempty"`
	CanRequestMatch bool               `json:"can_request_match"`
}

type CreateJobRequest struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
	JobType         string   `json:"job_type"`
	Description     string   `json:"description"`
}
