package domain

import "errors"

var (
	MessageSuccessRegister          = "user registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessVerifyEmail       = "email verified successfully"
	MessageSuccessSendVerifyEmail   = "verification email sent"
	MessageSuccessGetMe             = "user profile retrieved successfully"
	MessageSuccessCompleteOnboard   = "onboarding completed successfully"
	MessageSuccessUpdateProfile     = "profile updated successfully"
	MessageSuccessUpdateLanguage    = "language updated successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedCompleteOnboard = "failed to complete onboarding"
	MessageFailedUpdateProfile   = "failed to update profile"
	MessageFailedUpdateLanguage  = "failed to update language"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrNotOnboarded       = errors.New("user has not completed onboarding")
	ErrUnsupportedLang    = errors.New("unsupported language")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token     string `json:"token"`
		Onboarded bool   `json:"onboarded"`
	}

	// OnboardingRequest carries every profile field the generators depend on.
	// Validation errors are collected per field and block submission before
	// anything reaches the AI gateway.
	OnboardingRequest struct {
		Name              string  `json:"name" validate:"required"`
		Age               int     `json:"age" validate:"required,min=1,max=120"`
		Gender            string  `json:"gender" validate:"required,oneof=Male Female Other 'Prefer not to say'"`
		HeightCm          float64 `json:"height_cm" validate:"required,gt=0"`
		WeightKg          float64 `json:"weight_kg" validate:"required,gt=0"`
		DietaryPreference string  `json:"dietary_preference" validate:"required,oneof=Vegetarian Non-Vegetarian"`
		GoalType          string  `json:"goal_type" validate:"required,oneof=Medical Fitness"`
		GoalDetail        string  `json:"goal_detail" validate:"required"`
		GoalCustomDetail  string  `json:"goal_custom_detail" validate:"omitempty"`
		Profession        string  `json:"profession" validate:"required"`
		CustomProfession  string  `json:"custom_profession" validate:"omitempty"`
	}

	UpdateProfileRequest struct {
		Name              string  `json:"name" validate:"omitempty"`
		Age               int     `json:"age" validate:"omitempty,min=1,max=120"`
		Gender            string  `json:"gender" validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
		HeightCm          float64 `json:"height_cm" validate:"omitempty,gt=0"`
		WeightKg          float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		DietaryPreference string  `json:"dietary_preference" validate:"omitempty,oneof=Vegetarian Non-Vegetarian"`
		GoalType          string  `json:"goal_type" validate:"omitempty,oneof=Medical Fitness"`
		GoalDetail        string  `json:"goal_detail" validate:"omitempty"`
		GoalCustomDetail  string  `json:"goal_custom_detail" validate:"omitempty"`
		Profession        string  `json:"profession" validate:"omitempty"`
		CustomProfession  string  `json:"custom_profession" validate:"omitempty"`
	}

	UpdateLanguageRequest struct {
		Language string `json:"language" validate:"required,oneof=en hi"`
	}

	UserProfileResponse struct {
		ID                string  `json:"id"`
		Email             string  `json:"email"`
		Language          string  `json:"language"`
		IsPremium         bool    `json:"is_premium"`
		Onboarded         bool    `json:"onboarded"`
		Name              string  `json:"name"`
		Age               int     `json:"age"`
		Gender            string  `json:"gender"`
		HeightCm          float64 `json:"height_cm"`
		WeightKg          float64 `json:"weight_kg"`
		DietaryPreference string  `json:"dietary_preference"`
		GoalType          string  `json:"goal_type"`
		GoalDetail        string  `json:"goal_detail"`
		GoalCustomDetail  string  `json:"goal_custom_detail,omitempty"`
		Profession        string  `json:"profession"`
		CustomProfession  string  `json:"custom_profession,omitempty"`
		Greeting          string  `json:"greeting,omitempty"`
	}
)
