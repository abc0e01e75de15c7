package handler

import (
	"errors"
	"time"

	"jobboard-api/internal/dto"
	"jobboard-api/internal/middleware"
	"jobboard-api/internal/service"
	"jobboard-api/internal/usecase"
	"jobboard-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc *usecase.MatchUsecase
}

func NewMatchHandler(uc *usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs/:id/match", middleware.RequireSession(), middleware.RateLimiter(1, 4*time.Second), h.Match)
}

// Match runs one resume/job analysis against the external scoring service.
// Every failure here is local to the match panel; it never takes down the job
// page.
func (h *MatchHandler) Match(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	result, err := h.uc.RequestMatch(c.Context(), userID, uint(id))
	if err != nil {
		return h.matchError(c, err)
	}

	data := dto.MatchResultDTO{
		MatchScore:     result.MatchScore,
		ScoreBand:      util.ScoreBand(result.MatchScore),
		IsRecommended:  result.IsRecommended,
		MatchingSkills: result.MatchingSkills,
		MissingSkills:  result.MissingSkills,
		Reason:         result.Reason,
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze match",
		Data:    data,
	})
}

func (h *MatchHandler) matchError(c *fiber.Ctx, err error) error {
	var svcErr *service.MatchServiceError

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		})
	case errors.Is(err, usecase.ErrResumeRequired):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: usecase.ErrResumeRequired.Error(),
		})
	case errors.Is(err, usecase.ErrMatchInProgress):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: usecase.ErrMatchInProgress.Error(),
		})
	case errors.Is(err, service.ErrMatchNotConfigured):
		// misconfiguration, reported as-is
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: service.ErrMatchNotConfigured.Error(),
		})
	case errors.As(err, &svcErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: svcErr.Message,
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to analyze match",
		}, err)
	}
}
