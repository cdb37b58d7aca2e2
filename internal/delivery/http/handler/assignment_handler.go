package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/dto"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/pkg/response"
	"talent-optimizer/internal/usecase"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/assignments", h.Assign)
}

func (h *AssignmentHandler) Assign(c fiber.Ctx) error {
	var req dto.AssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.Assign(c.Context(), usecase.AssignmentInput{
		EmployeeID: req.EmployeeID,
		ProjectID:  req.ProjectID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", out)
}
