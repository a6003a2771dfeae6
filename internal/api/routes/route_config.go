package routes

import (
	"nutriscan-backend/internal/api/handlers"
	"nutriscan-backend/internal/middleware"
	"nutriscan-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ScanHandler     handlers.ScanHandler
	ProgressHandler handlers.ProgressHandler
	PlanHandler     handlers.PlanHandler
	WellnessHandler handlers.WellnessHandler
	PremiumHandler  handlers.PremiumHandler
	ChatHandler     handlers.ChatHandler
	I18nHandler     handlers.I18nHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Scan()
	c.Progress()
	c.Plans()
	c.Wellness()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/onboarding", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.CompleteOnboarding)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Patch("/language", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateLanguage)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.PremiumHandler.CreateTransaction)
	}
}

func (c *Config) Scan() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		scans.Post("/food", c.ScanHandler.AnalyzeFood)
		scans.Post("/qr", c.ScanHandler.AnalyzeQR)
		scans.Get("/history", c.ScanHandler.GetHistory)
	}
}

func (c *Config) Progress() {
	progress := c.App.Group("/api/v1/progress", c.Middleware.AuthMiddleware(c.JWTService))
	{
		progress.Get("", c.ProgressHandler.GetProgress)
		progress.Post("/water", c.ProgressHandler.AdjustWater)
	}
}

func (c *Config) Plans() {
	plans := c.App.Group("/api/v1/plans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		plans.Post("/meal", c.PlanHandler.GenerateMealPlan)
		plans.Post("/shopping-list", c.PlanHandler.GenerateShoppingList)
		plans.Post("/workout", c.PlanHandler.GenerateWorkoutPlan)
	}
}

func (c *Config) Wellness() {
	wellness := c.App.Group("/api/v1/wellness", c.Middleware.AuthMiddleware(c.JWTService))
	{
		wellness.Post("/mood", c.WellnessHandler.LogMood)
		wellness.Get("/mood", c.WellnessHandler.GetMoodHistory)
	}
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService))
	{
		chat.Post("/stream", c.ChatHandler.Stream)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/locales/:lang", c.I18nHandler.GetLocale)
	c.App.Post("/webhook/midtrans", c.PremiumHandler.MidtransWebhookHandler)
}
