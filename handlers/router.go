package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"quickreel/backend/config"
	"quickreel/backend/internal/apperror"
	"quickreel/backend/middleware"
	"quickreel/backend/utils"
)

// NewApp builds the Fiber application: error handling, middleware, routes
// and the static mount for stored uploads.
func NewApp(cfg *config.Config, h *ApplicationHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.MaxUploadMB * 1024 * 1024,
		ErrorHandler: errorHandler(h),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get("/test", h.TestStatus)

	api := app.Group("/api")
	api.Get("/hello", h.Hello)
	api.Get("/templates", h.ListTemplates)
	api.Post("/upload", h.UploadAssets)
	api.Post("/instant-edit", h.InstantEdit)

	// Stored assets are served back as plain static files.
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	return app
}

// errorHandler renders AppError and fiber.Error values into the standard
// error envelope. Internal causes are logged, never sent to the client.
func errorHandler(h *ApplicationHandler) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				h.Logger.WithField("error", appErr.Internal.Error()).Error("Request failed with internal error")
			}
			return utils.RespondWithError(c, appErr.Code, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.RespondWithError(c, fiberErr.Code, fiberErr.Message)
		}

		h.Logger.WithField("error", err.Error()).Error("Unhandled error in request")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, apperror.SafeMessage(err))
	}
}
