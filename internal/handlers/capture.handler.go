package handlers

import (
	"errors"

	"server/internal/app"
	captureController "server/internal/controllers/capture"
	"server/internal/logger"

	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CaptureHandler struct {
	Handler
	controller *captureController.CaptureController
}

func NewCaptureHandler(app app.App, router fiber.Router) *CaptureHandler {
	log := logger.New("handlers").File("capture_handler")
	return &CaptureHandler{
		controller: app.CaptureController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CaptureHandler) Register() {
	captures := h.router.Group("/chrome-capture")
	captures.Post("/", h.record)
	captures.Get("/", h.recent)
}

func (h *CaptureHandler) record(c *fiber.Ctx) error {
	log := h.log.Function("record")

	var request CaptureRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse capture request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse capture"})
	}

	total, err := h.controller.Record(c.Context(), request)
	if err != nil {
		if errors.Is(err, captureController.ErrInvalidCapture) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"message": "url and timestamp are required"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to record capture"})
	}

	return c.JSON(fiber.Map{"message": "Captured", "total": total})
}

func (h *CaptureHandler) recent(c *fiber.Ctx) error {
	events := h.controller.Recent(c.Context())
	if events == nil {
		events = []CaptureEvent{}
	}
	return c.JSON(fiber.Map{"events": events})
}
