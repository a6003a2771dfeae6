package config

import (
	"os"
	"time"

	"nutriscan-backend/internal/api/handlers"
	"nutriscan-backend/internal/api/routes"
	"nutriscan-backend/internal/middleware"
	"nutriscan-backend/internal/utils"
	"nutriscan-backend/internal/utils/storage"
	"nutriscan-backend/pkg/chat"
	"nutriscan-backend/pkg/gemini"
	"nutriscan-backend/pkg/jwt"
	"nutriscan-backend/pkg/plan"
	"nutriscan-backend/pkg/premium"
	"nutriscan-backend/pkg/progress"
	"nutriscan-backend/pkg/scan"
	"nutriscan-backend/pkg/user"
	"nutriscan-backend/pkg/wellness"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	gateway := gemini.NewClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	progressRepository := progress.NewProgressRepository(db)
	scanRepository := scan.NewScanRepository(db)
	wellnessRepository := wellness.NewWellnessRepository(db)
	premiumRepository := premium.NewPremiumRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	progressService := progress.NewProgressService(progressRepository)
	userService := user.NewUserService(userRepository, progressService, jwtService)
	scanService := scan.NewScanService(scanRepository, userRepository, gateway, s3)
	planService := plan.NewPlanService(userRepository, gateway)
	wellnessService := wellness.NewWellnessService(wellnessRepository)
	premiumService := premium.NewPremiumService(premiumRepository, userRepository)
	chatService := chat.NewChatService(userRepository, gateway)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	progressHandler := handlers.NewProgressHandler(progressService, validator)
	planHandler := handlers.NewPlanHandler(planService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService, validator)
	premiumHandler := handlers.NewPremiumHandler(premiumService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	i18nHandler := handlers.NewI18nHandler()

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ScanHandler:     scanHandler,
		ProgressHandler: progressHandler,
		PlanHandler:     planHandler,
		WellnessHandler: wellnessHandler,
		PremiumHandler:  premiumHandler,
		ChatHandler:     chatHandler,
		I18nHandler:     i18nHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
