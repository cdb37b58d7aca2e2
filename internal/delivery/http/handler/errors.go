package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/pkg/response"
	"talent-optimizer/internal/usecase"
)

// mapUsecaseError converts usecase failures into the envelope statuses.
// Anything unrecognized collapses to a generic 500.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var conflict *usecase.ConflictError
	if errors.As(err, &conflict) {
		return middleware.NewAppError(fiber.StatusConflict, "Employee already assigned", fiber.Map{
			"conflicting_project": conflict.ConflictingProject,
		}, err)
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Evaluation not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
