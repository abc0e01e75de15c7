package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type Job struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	RequiredSkills  []string        `gorm:"serializer:json;type:jsonb" json:"required_skills"`
	ExperienceLevel string          `gorm:"type:varchar(100)" json:"experience_level"` // free text, e.g. "Entry level", "Senior"
	JobType         string          `gorm:"type:varchar(100)" json:"job_type"`         // free text, e.g. "Full-time"
	Description     string          `gorm:"type:text" json:"description"`
	Embedding       pgvector.Vector `gorm:"type:vector(3072)" json:"-"` // pakai pgvector
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
