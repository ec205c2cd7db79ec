package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AuthAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of register and login attempts.",
		},
		[]string{"flow", "result"},
	)

	FoodsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "foods_created_total",
			Help: "Total number of food listings created.",
		},
	)

	FoodImageSourceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_image_source_total",
			Help: "Where the image of a new listing came from.",
		},
		[]string{"source"},
	)

	PortionsFulfilledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_portions_fulfilled_total",
			Help: "Total number of portion fulfillments by outcome.",
		},
		[]string{"outcome"},
	)

	FoodRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_requests_total",
			Help: "Total number of food requests by kind.",
		},
		[]string{"kind"},
	)

	NotificationsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_created_total",
			Help: "Total number of notifications created.",
		},
	)

	registerOnce sync.Once
)

func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			AuthAttemptsTotal,
			FoodsCreatedTotal,
			FoodImageSourceTotal,
			PortionsFulfilledTotal,
			FoodRequestsTotal,
			NotificationsCreatedTotal,
		)
	})
}

// Middleware records request count and latency per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Method points into a reused buffer unless copied.
		method := utils.CopyString(c.Method())
		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		HTTPRequestDurationSeconds.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
