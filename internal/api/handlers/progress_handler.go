package handlers

import (
	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/pkg/progress"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProgressHandler interface {
		GetProgress(c *fiber.Ctx) error
		AdjustWater(c *fiber.Ctx) error
	}

	progressHandler struct {
		progressService progress.ProgressService
		validator       *validator.Validate
	}
)

func NewProgressHandler(progressService progress.ProgressService, validator *validator.Validate) ProgressHandler {
	return &progressHandler{
		progressService: progressService,
		validator:       validator,
	}
}

func (h *progressHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.progressService.GetProgress(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *progressHandler) AdjustWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AdjustWaterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustWater, err)
	}

	res, err := h.progressService.AdjustWater(c.Context(), userID, req.DeltaMl)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustWater, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdjustWater)
}
