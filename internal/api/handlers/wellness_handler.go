package handlers

import (
	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/pkg/wellness"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WellnessHandler interface {
		LogMood(c *fiber.Ctx) error
		GetMoodHistory(c *fiber.Ctx) error
	}

	wellnessHandler struct {
		wellnessService wellness.WellnessService
		validator       *validator.Validate
	}
)

func NewWellnessHandler(wellnessService wellness.WellnessService, validator *validator.Validate) WellnessHandler {
	return &wellnessHandler{
		wellnessService: wellnessService,
		validator:       validator,
	}
}

func (h *wellnessHandler) LogMood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogMoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMood, err)
	}

	res, err := h.wellnessService.LogMood(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMood)
}

func (h *wellnessHandler) GetMoodHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wellnessService.GetMoodHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMoodHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMoodHistory)
}
