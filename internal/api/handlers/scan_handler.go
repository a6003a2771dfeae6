package handlers

import (
	"errors"

	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/pkg/scan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		AnalyzeFood(c *fiber.Ctx) error
		AnalyzeQR(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) AnalyzeFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeFoodRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyze, err)
	}

	res, err := h.scanService.AnalyzeFood(c.Context(), userID, *req)
	if err != nil {
		return scanErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAnalyze)
}

func (h *scanHandler) AnalyzeQR(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeQRRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyze, err)
	}

	res, err := h.scanService.AnalyzeQR(c.Context(), userID, *req)
	if err != nil {
		return scanErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAnalyze)
}

func (h *scanHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	search := c.Query("search")

	items, err := h.scanService.GetHistory(c.Context(), userID, search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func scanErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAnalysisInFlight):
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAnalyze, err)
	case errors.Is(err, domain.ErrNotOnboarded):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedAnalyze, err)
	case errors.Is(err, domain.ErrAnalysisFailed):
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyze, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyze, err)
	}
}
