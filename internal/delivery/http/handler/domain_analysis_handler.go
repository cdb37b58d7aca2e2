package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/dto"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/pkg/response"
	"talent-optimizer/internal/usecase"
)

type DomainAnalysisHandler struct {
	uc usecase.DomainAnalysisUsecase
}

func NewDomainAnalysisHandler(uc usecase.DomainAnalysisUsecase) *DomainAnalysisHandler {
	return &DomainAnalysisHandler{uc: uc}
}

func (h *DomainAnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/domain-analysis", h.Analyze)
}

func (h *DomainAnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.DomainAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.Analyze(c.Context(), req.AnalysisType)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
