package repository

import (
	"jobboard-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindProfileByUserID(userID uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile creates the profile row on first write, updates it afterwards.
func (r *ProfileRepository) UpsertProfile(profile *model.Profile) error {
	var existing model.Profile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
