package chat

import (
	"context"
	"errors"
	"fmt"

	"nutriscan-backend/domain"
	"nutriscan-backend/pkg/gemini"
	"nutriscan-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	// ChatService streams nutritionist-style consultation answers for premium
	// users. The model is grounded on the user's profile via the system
	// instruction and never sees other users' data.
	ChatService interface {
		Stream(ctx context.Context, userID string, req domain.ChatRequest, onChunk func(text string) error) error
	}

	chatService struct {
		userRepository user.UserRepository
		gateway        gemini.Gateway
	}
)

func NewChatService(userRepository user.UserRepository, gateway gemini.Gateway) ChatService {
	return &chatService{
		userRepository: userRepository,
		gateway:        gateway,
	}
}

func (s *chatService) Stream(ctx context.Context, userID string, req domain.ChatRequest, onChunk func(text string) error) error {
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if !u.IsPremium {
		return domain.ErrPremiumRequired
	}
	if !u.Onboarded {
		return domain.ErrNotOnboarded
	}

	profile := gemini.ProfileSummary{
		Age:               u.Age,
		Gender:            u.Gender,
		HeightCm:          u.HeightCm,
		WeightKg:          u.WeightKg,
		DietaryPreference: u.DietaryPreference,
		GoalType:          u.GoalType,
		GoalDetail:        u.GoalDetail,
		GoalCustomDetail:  u.GoalCustomDetail,
		Profession:        u.Profession,
		CustomProfession:  u.CustomProfession,
	}

	systemInstruction := fmt.Sprintf(`You are a friendly and knowledgeable nutritionist assistant for the NutriScan app.
Answer questions about nutrition, diet and healthy habits. Keep answers concise and practical.
If asked about medical conditions, advise consulting a doctor.

The user you are talking to has the following profile:
%s`, profile)

	return s.gateway.StreamChat(ctx, systemInstruction, req.History, req.Message, onChunk)
}
