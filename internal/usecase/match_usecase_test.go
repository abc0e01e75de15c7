package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"jobboard-api/internal/model"
	"jobboard-api/internal/service"
	"jobboard-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	jobs map[uint]*model.Job
	err  error
}

func (f *fakeJobRepo) FindJobByID(id uint) (*model.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	job, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobRepo) GetJobs(page, pageSize int) ([]model.Job, int64, error) {
	var all []model.Job
	for _, j := range f.jobs {
		all = append(all, *j)
	}
	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakeJobRepo) CreateJob(job *model.Job) error {
	job.ID = uint(len(f.jobs) + 1)
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) SearchSimilar(embedding pgvector.Vector, excludeID uint, topK int) ([]model.Job, error) {
	var out []model.Job
	for _, j := range f.jobs {
		if j.ID != excludeID {
			out = append(out, *j)
		}
		if len(out) == topK {
			break
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*model.Profile
	err      error
}

func (f *fakeProfileRepo) FindProfileByUserID(userID uuid.UUID) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) UpsertProfile(profile *model.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeMatcher struct {
	calls   int32
	lastReq service.MatchRequest
	result  *model.MatchResult
	err     error

	started chan struct{} // signalled when a call enters, if set
	block   chan struct{} // call waits on this before returning, if set
}

func (m *fakeMatcher) AnalyzeMatch(ctx context.Context, req service.MatchRequest) (*model.MatchResult, error) {
	atomic.AddInt32(&m.calls, 1)
	m.lastReq = req
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.block != nil {
		<-m.block
	}
	return m.result, m.err
}

func (m *fakeMatcher) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

func newTestJob(id uint) *model.Job {
	return &model.Job{
		ID:              id,
		Title:           "Backend Engineer",
		Company:         "Acme",
		Location:        "Jakarta",
		RequiredSkills:  []string{"Go", "PostgreSQL"},
		ExperienceLevel: "Mid level",
		JobType:         "Full-time",
		Description:     "Build APIs.",
		CreatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newMatchFixture(job *model.Job, profile *model.Profile, matcher *fakeMatcher) (*usecase.MatchUsecase, uuid.UUID) {
	jobRepo := &fakeJobRepo{jobs: map[uint]*model.Job{}}
	if job != nil {
		jobRepo.jobs[job.ID] = job
	}
	userID := uuid.New()
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*model.Profile{}}
	if profile != nil {
		profile.UserID = userID
		profileRepo.profiles[userID] = profile
	}
	return usecase.NewMatchUsecase(jobRepo, profileRepo, matcher), userID
}

func TestRequestMatch_Success(t *testing.T) {
	matcher := &fakeMatcher{result: &model.MatchResult{MatchScore: 72, IsRecommended: true, Reason: "ok"}}
	uc, userID := newMatchFixture(newTestJob(1), &model.Profile{ResumeContext: "Go developer"}, matcher)

	result, err := uc.RequestMatch(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 72.0, result.MatchScore)
	assert.Equal(t, 1, matcher.callCount())
}

func TestRequestMatch_JobNotFound(t *testing.T) {
	matcher := &fakeMatcher{}
	uc, userID := newMatchFixture(nil, &model.Profile{ResumeContext: "Go developer"}, matcher)

	_, err := uc.RequestMatch(context.Background(), userID, 99)
	assert.ErrorIs(t, err, usecase.ErrJobNotFound)
	assert.Equal(t, 0, matcher.callCount())
}

func TestRequestMatch_EmptyResume_NoNetworkCall(t *testing.T) {
	for _, resume := range []string{"", "   \n\t"} {
		matcher := &fakeMatcher{}
		uc, userID := newMatchFixture(newTestJob(1), &model.Profile{ResumeContext: resume}, matcher)

		_, err := uc.RequestMatch(context.Background(), userID, 1)
		assert.ErrorIs(t, err, usecase.ErrResumeRequired, "resume %q", resume)
		assert.Equal(t, 0, matcher.callCount(), "resume %q", resume)
	}
}

func TestRequestMatch_MissingProfile_NoNetworkCall(t *testing.T) {
	matcher := &fakeMatcher{}
	uc, userID := newMatchFixture(newTestJob(1), nil, matcher)

	_, err := uc.RequestMatch(context.Background(), userID, 1)
	assert.ErrorIs(t, err, usecase.ErrResumeRequired)
	assert.Equal(t, 0, matcher.callCount())
}

func TestRequestMatch_ProfileFetchErrorDegradesToValidation(t *testing.T) {
	// an unreadable profile behaves exactly like a missing one
	matcher := &fakeMatcher{}
	jobRepo := &fakeJobRepo{jobs: map[uint]*model.Job{1: newTestJob(1)}}
	profileRepo := &fakeProfileRepo{err: errors.New("connection refused")}
	uc := usecase.NewMatchUsecase(jobRepo, profileRepo, matcher)

	_, err := uc.RequestMatch(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, usecase.ErrResumeRequired)
	assert.Equal(t, 0, matcher.callCount())
}

func TestRequestMatch_BuildsNormalizedPayload(t *testing.T) {
	job := newTestJob(1)
	job.ExperienceLevel = "Entry level / Senior"
	job.RequiredSkills = nil
	matcher := &fakeMatcher{result: &model.MatchResult{}}
	uc, userID := newMatchFixture(job, &model.Profile{
		ResumeContext:   "Senior Go developer",
		PreferredTrack:  "",
		ExperienceLevel: "senior backend",
	}, matcher)

	_, err := uc.RequestMatch(context.Background(), userID, 1)
	require.NoError(t, err)

	req := matcher.lastReq
	assert.Equal(t, "Senior Go developer", req.ResumeContext)
	assert.Equal(t, "", req.PreferredTrack)
	assert.Equal(t, "Senior", req.ExperienceLevel)
	// "entry" outranks "senior" in the descriptor
	assert.Equal(t, "Fresher", req.JobExperienceLevel)
	assert.Equal(t, []string{"Jakarta"}, req.Locations)
	assert.Equal(t, []string{}, req.RequiredSkills)
	assert.Equal(t, "Backend Engineer", req.JobTitle)
	assert.Equal(t, "Acme", req.Company)
	assert.Equal(t, "Full-time", req.JobType)
}

func TestRequestMatch_ConcurrentInvocationRejected(t *testing.T) {
	matcher := &fakeMatcher{
		result:  &model.MatchResult{MatchScore: 50},
		started: make(chan struct{}, 1),
		block:   make(chan struct{}),
	}
	uc, userID := newMatchFixture(newTestJob(1), &model.Profile{ResumeContext: "Go developer"}, matcher)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.RequestMatch(context.Background(), userID, 1)
		firstDone <- err
	}()

	// wait until the first call holds the in-flight slot
	<-matcher.started

	_, err := uc.RequestMatch(context.Background(), userID, 1)
	assert.ErrorIs(t, err, usecase.ErrMatchInProgress)
	assert.Equal(t, 1, matcher.callCount())

	close(matcher.block)
	require.NoError(t, <-firstDone)

	// slot is free again after completion
	matcher.block = nil
	_, err = uc.RequestMatch(context.Background(), userID, 1)
	require.NoError(t, err)
}
