package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/dto"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/pkg/response"
	"talent-optimizer/internal/usecase"
)

// Omitted team_size asks for a default shortlist of five.
const defaultTeamSize = 5

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.TeamSize == 0 {
		req.TeamSize = defaultTeamSize
	}

	out, err := h.uc.Recommend(c.Context(), usecase.RecommendationInput{
		ProjectID:      req.ProjectID,
		RequiredSkills: req.RequiredSkills,
		TeamSize:       req.TeamSize,
		Priority:       req.Priority,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
