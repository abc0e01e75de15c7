package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"jobboard-api/internal/model"
	"jobboard-api/internal/service"
	"jobboard-api/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrResumeRequired is the fixed validation message shown when the match
	// feature is invoked without a loaded job or a non-empty resume.
	ErrResumeRequired = errors.New("resume and job data are required for match analysis")

	// ErrMatchInProgress rejects a second invocation while one is outstanding
	// for the same user.
	ErrMatchInProgress = errors.New("a match analysis is already in progress")
)

type ProfileRepositoryInterface interface {
	FindProfileByUserID(userID uuid.UUID) (*model.Profile, error)
	UpsertProfile(profile *model.Profile) error
}

// MatchUsecase composes job + profile data into one request against the
// external scoring service. A per-user single-slot guard keeps concurrent
// invocations from racing each other.
type MatchUsecase struct {
	jobRepo     JobRepositoryInterface
	profileRepo ProfileRepositoryInterface
	matcher     service.MatchServiceInterface

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewMatchUsecase(jobRepo JobRepositoryInterface, profileRepo ProfileRepositoryInterface, matcher service.MatchServiceInterface) *MatchUsecase {
	return &MatchUsecase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		matcher:     matcher,
		inFlight:    make(map[uuid.UUID]struct{}),
	}
}

// RequestMatch validates preconditions, then issues exactly one call to the
// scoring service. Precondition failures never reach the network.
func (uc *MatchUsecase) RequestMatch(ctx context.Context, userID uuid.UUID, jobID uint) (*model.MatchResult, error) {
	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	profile, err := uc.profileRepo.FindProfileByUserID(userID)
	if err != nil {
		// a missing or unreadable profile degrades to the same validation
		// error; profile problems never get their own failure mode here
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("profile fetch failed for user %s: %v", userID, err)
		}
		profile = nil
	}

	if profile == nil || strings.TrimSpace(profile.ResumeContext) == "" {
		return nil, ErrResumeRequired
	}

	if !uc.tryAcquire(userID) {
		return nil, ErrMatchInProgress
	}
	defer uc.release(userID)

	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	req := service.MatchRequest{
		ResumeContext:      profile.ResumeContext,
		PreferredTrack:     profile.PreferredTrack,
		ExperienceLevel:    util.NormalizeExperienceLevel(profile.ExperienceLevel),
		JobTitle:           job.Title,
		Company:            job.Company,
		Locations:          []string{job.Location},
		RequiredSkills:     skills,
		JobExperienceLevel: util.NormalizeExperienceLevel(job.ExperienceLevel),
		JobType:            job.JobType,
	}

	return uc.matcher.AnalyzeMatch(ctx, req)
}

func (uc *MatchUsecase) tryAcquire(userID uuid.UUID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[userID]; busy {
		return false
	}
	uc.inFlight[userID] = struct{}{}
	return true
}

func (uc *MatchUsecase) release(userID uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, userID)
}
