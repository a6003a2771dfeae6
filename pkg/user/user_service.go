package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"
	"nutriscan-backend/internal/i18n"
	"nutriscan-backend/internal/utils"
	"nutriscan-backend/internal/utils/mailing"
	"nutriscan-backend/pkg/jwt"
	"nutriscan-backend/pkg/progress"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		CompleteOnboarding(ctx context.Context, userID string, req domain.OnboardingRequest) (domain.UserProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfileResponse, error)
		UpdateLanguage(ctx context.Context, userID string, req domain.UpdateLanguageRequest) error
	}

	userService struct {
		userRepository  UserRepository
		progressService progress.ProgressService
		jwtService      jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, progressService progress.ProgressService, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:  userRepository,
		progressService: progressService,
		jwtService:      jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		Language: i18n.DefaultLanguage,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// Verification mail failures never block registration; the user can
	// request a resend later.
	if err := s.sendVerifyMail(user); err != nil {
		log.Printf("failed sending verification email to %s: %v", user.Email, err)
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{
		Token:     token,
		Onboarded: user.Onboarded,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerifyMail(user)
}

func (s *userService) sendVerifyMail(user *entities.User) error {
	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Welcome to NutriScan!</p><p>Click <a href=%q>here</a> to verify your email address.</p>",
		verifyLink,
	)
	return mailing.SendMail(user.Email, "Verify your NutriScan account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	userID, _, err := s.jwtService.GetUserIDByToken(token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return nil
	}
	user.IsVerified = true
	return s.userRepository.Update(ctx, user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) CompleteOnboarding(ctx context.Context, userID string, req domain.OnboardingRequest) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	user.Name = req.Name
	user.Age = req.Age
	user.Gender = req.Gender
	user.HeightCm = req.HeightCm
	user.WeightKg = req.WeightKg
	user.DietaryPreference = req.DietaryPreference
	user.GoalType = req.GoalType
	user.GoalDetail = req.GoalDetail
	user.GoalCustomDetail = req.GoalCustomDetail
	user.Profession = req.Profession
	user.CustomProfession = req.CustomProfession
	user.Onboarded = true

	if err := s.userRepository.Update(ctx, user); err != nil {
		return domain.UserProfileResponse{}, err
	}

	if err := s.progressService.SyncWaterGoal(ctx, userID, user.WeightKg); err != nil {
		return domain.UserProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}
	if !user.Onboarded {
		return domain.UserProfileResponse{}, domain.ErrNotOnboarded
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age > 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.HeightCm > 0 {
		user.HeightCm = req.HeightCm
	}
	weightChanged := req.WeightKg > 0 && req.WeightKg != user.WeightKg
	if req.WeightKg > 0 {
		user.WeightKg = req.WeightKg
	}
	if req.DietaryPreference != "" {
		user.DietaryPreference = req.DietaryPreference
	}
	if req.GoalType != "" {
		user.GoalType = req.GoalType
	}
	if req.GoalDetail != "" {
		user.GoalDetail = req.GoalDetail
	}
	if req.GoalCustomDetail != "" {
		user.GoalCustomDetail = req.GoalCustomDetail
	}
	if req.Profession != "" {
		user.Profession = req.Profession
	}
	if req.CustomProfession != "" {
		user.CustomProfession = req.CustomProfession
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return domain.UserProfileResponse{}, err
	}

	if weightChanged {
		if err := s.progressService.SyncWaterGoal(ctx, userID, user.WeightKg); err != nil {
			return domain.UserProfileResponse{}, err
		}
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateLanguage(ctx context.Context, userID string, req domain.UpdateLanguageRequest) error {
	if !i18n.Supported(req.Language) {
		return domain.ErrUnsupportedLang
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Language = req.Language
	return s.userRepository.Update(ctx, user)
}

func toProfileResponse(user *entities.User) domain.UserProfileResponse {
	// The home screen greeting is rendered in the user's language. Before
	// onboarding there is no name to greet with.
	greeting := ""
	if user.Name != "" {
		greeting = i18n.Translate(user.Language, "helloName", map[string]string{"name": user.Name})
	}
	return domain.UserProfileResponse{
		ID:                user.ID.String(),
		Email:             user.Email,
		Language:          user.Language,
		IsPremium:         user.IsPremium,
		Onboarded:         user.Onboarded,
		Name:              user.Name,
		Age:               user.Age,
		Gender:            user.Gender,
		HeightCm:          user.HeightCm,
		WeightKg:          user.WeightKg,
		DietaryPreference: user.DietaryPreference,
		GoalType:          user.GoalType,
		GoalDetail:        user.GoalDetail,
		GoalCustomDetail:  user.GoalCustomDetail,
		Profession:        user.Profession,
		CustomProfession:  user.CustomProfession,
		Greeting:          greeting,
	}
}
