package usecase

import (
	"context"
	"errors"
	"log"

	"jobboard-api/internal/cache"
	"jobboard-api/internal/model"
	"jobboard-api/internal/response"
	"jobboard-api/internal/service"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

const similarJobsLimit = 5

// JobRepositoryInterface is the slice of the gorm repository the job flows
// need; fakes implement it in tests.
type JobRepositoryInterface interface {
	FindJobByID(id uint) (*model.Job, error)
	GetJobs(page, pageSize int) ([]model.Job, int64, error)
	CreateJob(job *model.Job) error
	SearchSimilar(embedding pgvector.Vector, excludeID uint, topK int) ([]model.Job, error)
}

type JobUsecase struct {
	jobRepo  JobRepositoryInterface
	jobCache *cache.JobCache
	gemini   service.GeminiServiceInterface
}

func NewJobUsecase(jobRepo JobRepositoryInterface, jobCache *cache.JobCache, gemini service.GeminiServiceInterface) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, jobCache: jobCache, gemini: gemini}
}

// GetJob returns one job by primary key, read-through cached. Any repository
// failure suppresses the job entirely; there is no partial view.
func (uc *JobUsecase) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	if job, ok := uc.jobCache.GetJob(ctx, id); ok {
		return job, nil
	}

	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	uc.jobCache.SetJob(ctx, job)
	return job, nil
}

func (uc *JobUsecase) ListJobs(page, pageSize int) ([]model.Job, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	jobs, total, err := uc.jobRepo.GetJobs(page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}

	from := 0
	to := 0
	if len(jobs) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(jobs) - 1
	}

	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
	return jobs, pagination, nil
}

// CreateJob stores a posting and embeds its description so it shows up in
// similar-jobs searches. Embedding failure is logged, not fatal; the job is
// still created.
func (uc *JobUsecase) CreateJob(ctx context.Context, job *model.Job) error {
	if uc.gemini != nil {
		emb, err := uc.gemini.GenerateEmbedding(ctx, job.Title+"\n"+job.Description)
		if err != nil {
			log.Printf("job embedding failed, creating without embedding: %v", err)
		} else {
			job.Embedding = pgvector.NewVector(emb)
		}
	}
	return uc.jobRepo.CreateJob(job)
}

// SimilarJobs ranks other postings by embedding distance. Reads the job from
// the repository directly since the cached copy drops the embedding column.
func (uc *JobUsecase) SimilarJobs(id uint) ([]model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if len(job.Embedding.Slice()) == 0 {
		return []model.Job{}, nil
	}

	return uc.jobRepo.SearchSimilar(job.Embedding, job.ID, similarJobsLimit)
}
