package handlers

import (
	"strings"

	"server/internal/app"
	applicantController "server/internal/controllers/applicant"
	"server/internal/logger"

	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ApplicantHandler struct {
	Handler
	controller *applicantController.ApplicantController
}

func NewApplicantHandler(app app.App, router fiber.Router) *ApplicantHandler {
	log := logger.New("handlers").File("applicant_handler")
	return &ApplicantHandler{
		controller: app.ApplicantController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApplicantHandler) Register() {
	applicants := h.router.Group("/applicants")
	applicants.Post("/", h.submit)
	applicants.Post("/validate", h.validateStep)
}

func (h *ApplicantHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	var submission ApplicantSubmission
	if err := c.BodyParser(&submission); err != nil {
		log.Er("failed to parse submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"ok": false, "message": "failed to parse submission"})
	}

	result, err := h.controller.Submit(c.Context(), &submission, clientIP(c), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"ok": false})
	}

	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"ok": false, "errors": result.Errors})
	}

	response := fiber.Map{"ok": true}
	if result.ApplicantID != "" {
		response["id"] = result.ApplicantID
		response["emailSent"] = result.EmailSent
	}

	return c.JSON(response)
}

func (h *ApplicantHandler) validateStep(c *fiber.Ctx) error {
	log := h.log.Function("validateStep")

	var request StepValidationRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse step validation request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"ok": false, "message": "failed to parse request"})
	}

	fieldErrors := h.controller.ValidateStep(&request.Data, request.Step)
	if len(fieldErrors) > 0 {
		return c.JSON(fiber.Map{"ok": false, "errors": fieldErrors})
	}

	return c.JSON(fiber.Map{"ok": true, "errors": []any{}})
}

// clientIP prefers the first X-Forwarded-For hop, matching what the edge
// proxy reports for the original client.
func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get(fiber.HeaderXForwardedFor)
	if forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}
	return c.IP()
}
