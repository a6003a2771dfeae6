package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"nutriscan-backend/domain"
	"nutriscan-backend/internal/api/presenters"
	"nutriscan-backend/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// streamTimeout bounds a single chat answer. An abandoned connection must
// not keep the upstream model request alive indefinitely.
const streamTimeout = 2 * time.Minute

type (
	ChatHandler interface {
		Stream(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

// Stream relays the model's answer as server-sent events. Errors raised after
// the stream has started are reported as an error event on the stream itself.
func (h *chatHandler) Stream(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	// The fasthttp ctx outlives the fiber one and is cancelled with the
	// connection, so the upstream request dies with the client.
	reqCtx := c.Context()
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithTimeout(reqCtx, streamTimeout)
		defer cancel()

		err := h.chatService.Stream(ctx, userID, *req, func(text string) error {
			if _, werr := fmt.Fprintf(w, "data: %s\n\n", text); werr != nil {
				return werr
			}
			return w.Flush()
		})
		if err != nil {
			if errors.Is(err, domain.ErrPremiumRequired) || errors.Is(err, domain.ErrNotOnboarded) {
				fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
			} else {
				fmt.Fprintf(w, "event: error\ndata: %s\n\n", domain.ErrChatUnavailable.Error())
			}
			_ = w.Flush()
			return
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		_ = w.Flush()
	}))
	return nil
}
