package routes

import (
	"Food-Sharing-Platform/internal/api/handlers"
	"Food-Sharing-Platform/internal/middleware"
	"Food-Sharing-Platform/internal/utils/metrics"
	"Food-Sharing-Platform/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	FoodRequestHandler  handlers.FoodRequestHandler
	NotificationHandler handlers.NotificationHandler
	LocationHandler     handlers.LocationHandler
	FeedbackHandler     handlers.FeedbackHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	MetricsEnabled      bool
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Foods()
	c.FoodRequests()
	c.Notifications()
	c.Locations()
	c.Feedback()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) optionalAuth() fiber.Handler {
	return c.Middleware.OptionalAuth(c.JWTService)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	if c.MetricsEnabled {
		c.App.Get("/metrics", metrics.Handler())
	}
}

func (c *Config) User() {
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Post("/logout", c.UserHandler.Logout)
	c.App.Get("/logout", c.UserHandler.Logout)

	c.App.Get("/api/users", c.UserHandler.ListUsers)
	c.App.Get("/api/me", c.auth(), c.UserHandler.Me)
}

func (c *Config) Foods() {
	c.App.Get("/api/foods", c.FoodHandler.ListFoods)
	c.App.Get("/api/my-foods", c.auth(), c.FoodHandler.GetMyFoods)
	c.App.Post("/api/foods/:id/image", c.auth(), c.FoodHandler.UploadFoodImage)
	c.App.Delete("/api/foods/:id", c.auth(), c.FoodHandler.DeleteFoodByID)

	// form endpoints
	c.App.Post("/add-food", c.auth(), c.FoodHandler.AddFood)
	c.App.Post("/delete-food", c.optionalAuth(), c.FoodHandler.DeleteFood)
	c.App.Post("/take-food", c.optionalAuth(), c.FoodHandler.TakeFood)
}

func (c *Config) FoodRequests() {
	c.App.Post("/request-food", c.auth(), c.FoodRequestHandler.RequestFood)

	requests := c.App.Group("/api/food-requests", c.auth())
	requests.Post("", c.FoodRequestHandler.CreateFoodRequest)
	requests.Get("", c.FoodRequestHandler.GetFoodRequests)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/notifications")
	notifications.Post("", c.NotificationHandler.CreateNotification)
	notifications.Get("", c.auth(), c.NotificationHandler.GetNotifications)
	notifications.Put("/read-all", c.auth(), c.NotificationHandler.MarkAllAsRead)
	notifications.Put("/:id/read", c.auth(), c.NotificationHandler.MarkAsRead)
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/locations", c.auth())
	locations.Get("", c.LocationHandler.GetLocations)
	locations.Post("", c.LocationHandler.CreateLocation)
	locations.Delete("/:id", c.LocationHandler.DeleteLocation)
}

func (c *Config) Feedback() {
	c.App.Post("/send-message", c.FeedbackHandler.SendMessage)
	c.App.Post("/add-review", c.FeedbackHandler.AddReview)

	c.App.Get("/api/messages", c.auth(), c.FeedbackHandler.ListMessages)
	c.App.Get("/api/reviews", c.FeedbackHandler.ListReviews)
}
