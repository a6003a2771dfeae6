package handlers

import (
	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

type (
	I18nHandler interface {
		GetLocale(c *fiber.Ctx) error
	}

	i18nHandler struct{}
)

func NewI18nHandler() I18nHandler {
	return &i18nHandler{}
}

func (h *i18nHandler) GetLocale(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !i18n.Supported(lang) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetLocale, domain.ErrUnsupportedLang)
	}

	return presenters.SuccessResponse(c, i18n.Table(lang), fiber.StatusOK, domain.MessageSuccessGetLocale)
}
