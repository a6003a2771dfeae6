package handlers

import (
	"errors"

	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/pkg/plan"

	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GenerateMealPlan(c *fiber.Ctx) error
		GenerateShoppingList(c *fiber.Ctx) error
		GenerateWorkoutPlan(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
	}
)

func NewPlanHandler(planService plan.PlanService) PlanHandler {
	return &planHandler{planService: planService}
}

func (h *planHandler) GenerateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.planService.GenerateMealPlan(c.Context(), userID)
	if err != nil {
		return planErrorResponse(c, err, domain.MessageFailedGenerateMealPlan)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateMealPlan)
}

func (h *planHandler) GenerateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.planService.GenerateShoppingList(c.Context(), userID)
	if err != nil {
		return planErrorResponse(c, err, domain.MessageFailedGenerateShoppingList)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateShoppingList)
}

func (h *planHandler) GenerateWorkoutPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.planService.GenerateWorkoutPlan(c.Context(), userID)
	if err != nil {
		return planErrorResponse(c, err, domain.MessageFailedGenerateWorkoutPlan)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateWorkoutPlan)
}

func planErrorResponse(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, domain.ErrNotOnboarded):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, message, err)
	case errors.Is(err, domain.ErrPlanGenerationFailed), errors.Is(err, domain.ErrMalformedPlan):
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
}
