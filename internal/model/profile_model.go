package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the job seeker's profile. Every content field is optional; an
// empty ResumeContext simply disables the match feature for that user.
type Profile struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	ResumeContext   string    `gorm:"type:text" json:"resume_context"`
	PreferredTrack  string    `gorm:"type:varchar(100)" json:"preferred_track"`
	ExperienceLevel string    `gorm:"type:varchar(100)" json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
