package usecase

import (
	"errors"
	"time"

	"jobboard-api/internal/model"
	"jobboard-api/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileUsecase struct {
	profileRepo ProfileRepositoryInterface
}

func NewProfileUsecase(profileRepo ProfileRepositoryInterface) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

func (uc *ProfileUsecase) GetProfile(userID uuid.UUID) (*model.Profile, error) {
	profile, err := uc.profileRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile upserts the free-text profile fields. Empty fields are valid;
// they just keep the match feature disabled.
func (uc *ProfileUsecase) UpdateProfile(userID uuid.UUID, resumeContext, preferredTrack, experienceLevel string) (*model.Profile, error) {
	profile := &model.Profile{
		UserID:          userID,
		ResumeContext:   resumeContext,
		PreferredTrack:  preferredTrack,
		ExperienceLevel: experienceLevel,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.profileRepo.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// IngestResume extracts text from an uploaded resume PDF and stores it as the
// profile's resume context, preserving the other profile fields.
func (uc *ProfileUsecase) IngestResume(userID uuid.UUID, pdfPath string) (*model.Profile, error) {
	content, err := util.ExtractResumeText(pdfPath)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.FindProfileByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &model.Profile{UserID: userID, CreatedAt: time.Now()}
	}

	profile.ResumeContext = content
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
