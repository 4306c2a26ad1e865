package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/csvshipper/csv-shipper/docs"
	"github.com/csvshipper/csv-shipper/internal/api/handler"
	"github.com/csvshipper/csv-shipper/internal/api/middleware"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// Deps holds everything the router needs. The caller owns their lifecycle.
type Deps struct {
	Auth      ports.AuthService
	Addresses ports.AddressService
	Shipments ports.ShipmentService
	Webhooks  handler.WebhookEnqueuer
	Health    map[string]handler.HealthCheck
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "csvshipper",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authHandler := handler.NewAuthHandler(d.Auth, d.Addresses)
	addressHandler := handler.NewAddressHandler(d.Addresses)
	shipmentHandler := handler.NewShipmentHandler(d.Shipments)
	webhookHandler := handler.NewWebhookHandler(d.Webhooks)
	healthHandler := handler.NewHealthHandler(d.Health)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password-reset", authHandler.RequestPasswordReset)
	e.POST("/auth/password-reset/:token", authHandler.ResetPassword)
	e.GET("/users/:username", authHandler.Profile)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(d.JWTSecret))
	v1.GET("/dashboard", authHandler.Dashboard)
	v1.GET("/addresses", addressHandler.List)
	v1.POST("/addresses", addressHandler.Create)
	v1.DELETE("/addresses/:id", addressHandler.Delete)
	v1.POST("/shipments", shipmentHandler.CreateShipment)
	v1.POST("/labels", shipmentHandler.CreateLabel)
	v1.POST("/rates", shipmentHandler.GetRates)
	v1.POST("/labels/rates/:rate_id", shipmentHandler.LabelFromRate)

	// --- Carrier callbacks ---
	e.POST("/webhooks/shipengine", webhookHandler.Receive)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
