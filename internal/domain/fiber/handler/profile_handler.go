package handler

import (
	"path/filepath"
	"strings"

	"jobboard-api/internal/dto"
	"jobboard-api/internal/middleware"
	"jobboard-api/internal/model"
	"jobboard-api/internal/usecase"
	"jobboard-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxResumeSize = 5 * 1024 * 1024

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	grp := app.Group("/profile", middleware.RequireSession())
	grp.Get("/", h.Get)
	grp.Put("/", h.Update)
	grp.Post("/resume", h.UploadResume)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	profile, err := h.uc.GetProfile(userID)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "profile not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get profile",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    toProfileDTO(profile),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	profile, err := h.uc.UpdateProfile(userID, req.ResumeContext, req.PreferredTrack, req.ExperienceLevel)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update profile",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    toProfileDTO(profile),
	})
}

// UploadResume accepts a PDF, extracts its text and stores it as the user's
// resume context.
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}

	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported resume file type",
		})
	}

	savePath := filepath.Join("./uploads/resume/", uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}

	profile, err := h.uc.IngestResume(userID, savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to extract resume text",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success upload resume",
		Data:    toProfileDTO(profile),
	})
}

func toProfileDTO(profile *model.Profile) dto.ProfileDTO {
	return dto.ProfileDTO{
		ID:              profile.ID,
		UserID:          profile.UserID,
		ResumeContext:   profile.ResumeContext,
		PreferredTrack:  profile.PreferredTrack,
		ExperienceLevel: profile.ExperienceLevel,
		UpdatedAt:       profile.UpdatedAt,
	}
}
