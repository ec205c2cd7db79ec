package config

import (
	"Food-Sharing-Platform/internal/api/handlers"
	"Food-Sharing-Platform/internal/api/routes"
	"Food-Sharing-Platform/internal/middleware"
	"Food-Sharing-Platform/internal/utils"
	"Food-Sharing-Platform/internal/utils/imagesearch"
	"Food-Sharing-Platform/internal/utils/mailing"
	"Food-Sharing-Platform/internal/utils/metrics"
	"Food-Sharing-Platform/internal/utils/storage"
	"Food-Sharing-Platform/pkg/feedback"
	"Food-Sharing-Platform/pkg/food"
	"Food-Sharing-Platform/pkg/foodrequest"
	"Food-Sharing-Platform/pkg/jwt"
	"Food-Sharing-Platform/pkg/location"
	"Food-Sharing-Platform/pkg/notification"
	"Food-Sharing-Platform/pkg/user"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies are the collaborators that talk to the outside world.
type Dependencies struct {
	Searcher imagesearch.ImageSearcher
	S3       storage.AwsS3
	Mailer   mailing.Mailer
}

func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:           "Yemek Paylaşım Platformu",
		EnablePrintRoutes: true,
	})
	app.Use(recover.New())

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("opening access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Istanbul",
		Output:     io.MultiWriter(os.Stdout, file),
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Second,
	}))

	if cfg.MetricsEnabled {
		metrics.MustRegister()
		app.Use(metrics.Middleware())
	}

	// utils
	s3, err := storage.NewAwsS3(cfg)
	if err != nil {
		return nil, err
	}

	Register(app, db, cfg, Dependencies{
		Searcher: imagesearch.NewUnsplashClient(cfg.UnsplashAccessKey, ""),
		S3:       s3,
		Mailer:   mailing.NewMailer(mailing.LoadMailConfig(cfg)),
	})
	return app, nil
}

// Register wires repositories, services and handlers onto app.
func Register(app *fiber.App, db *gorm.DB, cfg utils.Config, deps Dependencies) {
	utils.InitValidator()
	validator := utils.Validate
	middlewares := middleware.NewMiddleware(cfg.SessionCookieName)

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	locationRepository := location.NewLocationRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	foodRequestRepository := foodrequest.NewFoodRequestRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.SessionSecret)
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, locationRepository, deps.S3, deps.Searcher, cfg.ImagesDir)
	locationService := location.NewLocationService(locationRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	foodRequestService := foodrequest.NewFoodRequestService(
		foodRequestRepository,
		foodRepository,
		notificationService,
		deps.Mailer,
		cfg.AppURL,
	)
	feedbackService := feedback.NewFeedbackService(feedbackRepository, foodRepository, deps.Mailer, cfg.AdminEmail)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, handlers.SessionCookie{
		Name:   cfg.SessionCookieName,
		Secure: cfg.CookieSecure,
	})
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	foodRequestHandler := handlers.NewFoodRequestHandler(foodRequestService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		FoodRequestHandler:  foodRequestHandler,
		NotificationHandler: notificationHandler,
		LocationHandler:     locationHandler,
		FeedbackHandler:     feedbackHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		MetricsEnabled:      cfg.MetricsEnabled,
	}
	routesConfig.Setup()
}
