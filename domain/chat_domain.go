package domain

import "errors"

var (
	MessageFailedChat = "failed to reach the chat assistant"

	ErrChatUnavailable = errors.New("the chat assistant is currently unavailable")
	ErrPremiumRequired = errors.New("premium access required")
)

type (
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=user model"`
		Content string `json:"content" validate:"required"`
	}

	ChatRequest struct {
		Message string        `json:"message" validate:"required"`
		History []ChatMessage `json:"history" validate:"omitempty,dive"`
	}
)
