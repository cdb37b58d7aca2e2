package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/dto"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/pkg/response"
	"talent-optimizer/internal/usecase"
)

type EvaluationHandler struct {
	uc usecase.EvaluationUsecase
}

func NewEvaluationHandler(uc usecase.EvaluationUsecase) *EvaluationHandler {
	return &EvaluationHandler{uc: uc}
}

func (h *EvaluationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/employee-evaluation", h.Evaluate)
	r.Post("/quantitative-analysis", h.Quantitative)
	r.Post("/qualitative-analysis", h.Qualitative)

	evals := r.Group("/evaluations")
	evals.Put("/:id/approve", h.Approve)
	evals.Put("/:id/review", h.Review)
	evals.Put("/:id/reject", h.Reject)
}

func (h *EvaluationHandler) Evaluate(c fiber.Ctx) error {
	employeeID, err := employeeIDFromBody(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Evaluate(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *EvaluationHandler) Quantitative(c fiber.Ctx) error {
	employeeID, err := employeeIDFromBody(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Quantitative(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *EvaluationHandler) Qualitative(c fiber.Ctx) error {
	employeeID, err := employeeIDFromBody(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Qualitative(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *EvaluationHandler) Approve(c fiber.Ctx) error {
	return h.transition(c, "approved", "")
}

func (h *EvaluationHandler) Review(c fiber.Ctx) error {
	note, err := transitionNote(c)
	if err != nil {
		return err
	}
	return h.transition(c, "review", note.Comment)
}

func (h *EvaluationHandler) Reject(c fiber.Ctx) error {
	note, err := transitionNote(c)
	if err != nil {
		return err
	}
	return h.transition(c, "rejected", note.Reason)
}

func (h *EvaluationHandler) transition(c fiber.Ctx, target, note string) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Evaluation id is required", nil, nil)
	}
	out, err := h.uc.Transition(c.Context(), id, target, note)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func employeeIDFromBody(c fiber.Ctx) (string, error) {
	var req dto.EvaluationRequest
	if err := c.Bind().Body(&req); err != nil {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	id := strings.TrimSpace(req.EmployeeID)
	if id == "" {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "employee_id is required", nil, nil)
	}
	return id, nil
}

func transitionNote(c fiber.Ctx) (dto.TransitionRequest, error) {
	var req dto.TransitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return dto.TransitionRequest{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return req, nil
}
