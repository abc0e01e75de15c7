package handler

import (
	"log"
	"strings"
	"time"

	"jobboard-api/internal/dto"
	"jobboard-api/internal/middleware"
	"jobboard-api/internal/model"
	"jobboard-api/internal/usecase"
	"jobboard-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobUC     *usecase.JobUsecase
	profileUC *usecase.ProfileUsecase
}

func NewJobHandler(jobUC *usecase.JobUsecase, profileUC *usecase.ProfileUsecase) *JobHandler {
	return &JobHandler{jobUC: jobUC, profileUC: profileUC}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/jobs", h.List)
	app.Post("/jobs", middleware.RateLimiter(10, 1*time.Minute), h.Create)
	app.Get("/jobs/:id", middleware.OptionalSession(), h.Detail)
	app.Get("/jobs/:id/similar", h.Similar)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	jobs, pagination, err := h.jobUC.ListJobs(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	items := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		items = append(items, toJobDTO(&jobs[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get jobs",
		Data:       items,
		Pagination: pagination,
	})
}

// Detail serves the job page payload. A job fetch failure suppresses the whole
// view; profile problems only drop the profile block.
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	job, err := h.jobUC.GetJob(c.Context(), uint(id))
	if err != nil {
		if err == usecase.ErrJobNotFound {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get job",
		}, err)
	}

	view := dto.JobViewDTO{Job: toJobDTO(job)}

	if userID, ok := middleware.SessionUserID(c); ok {
		profile, err := h.profileUC.GetProfile(userID)
		if err != nil {
			if err != usecase.ErrProfileNotFound {
				log.Printf("profile fetch failed for user %s: %v", userID, err)
			}
			// treated the same as no profile
		} else {
			view.Profile = &dto.ProfileSummaryDTO{
				PreferredTrack:  profile.PreferredTrack,
				ExperienceLevel: profile.ExperienceLevel,
				HasResume:       strings.TrimSpace(profile.ResumeContext) != "",
			}
			view.CanRequestMatch = view.Profile.HasResume
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    view,
	})
}

func (h *JobHandler) Similar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	jobs, err := h.jobUC.SimilarJobs(uint(id))
	if err != nil {
		if err == usecase.ErrJobNotFound {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get similar jobs",
		}, err)
	}

	items := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		items = append(items, toJobDTO(&jobs[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar jobs",
		Data:    items,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Company) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "title and company are required",
		})
	}

	job := &model.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		RequiredSkills:  req.RequiredSkills,
		ExperienceLevel: req.ExperienceLevel,
		JobType:         req.JobType,
		Description:     req.Description,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := h.jobUC.CreateJob(c.Context(), job); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    toJobDTO(job),
	})
}

func toJobDTO(job *model.Job) dto.JobDTO {
	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return dto.JobDTO{
		ID:              job.ID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		RequiredSkills:  skills,
		ExperienceLevel: job.ExperienceLevel,
		JobType:         job.JobType,
		Description:     job.Description,
		PostedAt:        util.FormatLongDate(job.CreatedAt),
		CreatedAt:       job.CreatedAt,
	}
}
