package handlers

import (
	"errors"
	"io"

	"server/internal/app"
	adminController "server/internal/controllers/admin"
	"server/internal/logger"

	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	controller *adminController.AdminController
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		controller: app.AdminController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin")
	admin.Post("/auth", h.login)
	admin.Post("/reset", h.reset)
	admin.Post("/upload", h.upload)
	admin.Get("/metrics", h.metrics)
	admin.Get("/uploads", h.recentUploads)
	admin.Get("/applicants", h.recentApplicants)
	admin.Get("/applicants/:id", h.applicant)
}

func (h *AdminHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse login request"})
	}

	if request.Username == "" || request.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "Missing credentials"})
	}

	if !h.controller.Authenticate(request.Username, request.Password) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"message": "Invalid credentials"})
	}

	return c.JSON(fiber.Map{"message": "Authenticated"})
}

func (h *AdminHandler) reset(c *fiber.Ctx) error {
	log := h.log.Function("reset")

	var request ResetRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse reset request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse reset request"})
	}

	hash, err := h.controller.ResetHash(request.Secret, request.Username, request.NewPassword)
	if err != nil {
		if errors.Is(err, adminController.ErrResetNotAllowed) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "Reset secret missing or invalid"})
		}
		if errors.Is(err, adminController.ErrResetFieldsMissing) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"message": "Missing username or newPassword"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to generate hash"})
	}

	return c.JSON(fiber.Map{
		"message":      "Password hashed, paste the hash into your env var list",
		"username":     request.Username,
		"passwordHash": hash,
	})
}

func (h *AdminHandler) upload(c *fiber.Ctx) error {
	log := h.log.Function("upload")

	target := c.FormValue("target")
	fileHeader, err := c.FormFile("file")
	if target == "" || err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "target and file are required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "unable to read file"})
	}
	defer file.Close()

	data := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(file, data); err != nil {
		log.Er("failed to read upload body", err, "filename", fileHeader.Filename)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "unable to read file"})
	}

	result, err := h.controller.Upload(c.Context(), adminController.UploadInput{
		Target:      target,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, adminController.ErrBlobUnavailable) {
			return c.Status(fiber.StatusGatewayTimeout).
				JSON(fiber.Map{"message": "storage unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "upload failed"})
	}

	return c.JSON(fiber.Map{
		"message": "Uploaded",
		"total":   result.Uploads,
		"blobUrl": result.BlobURL,
		"rows":    result.Rows,
	})
}

func (h *AdminHandler) metrics(c *fiber.Ctx) error {
	return c.JSON(h.controller.Metrics(c.Context()))
}

func (h *AdminHandler) recentUploads(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"uploads": h.controller.RecentUploads(20)})
}

func (h *AdminHandler) recentApplicants(c *fiber.Ctx) error {
	applicants, err := h.controller.RecentApplicants(c.Context(), 50)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to load applicants"})
	}
	if applicants == nil {
		applicants = []*Applicant{}
	}
	return c.JSON(fiber.Map{"applicants": applicants})
}

func (h *AdminHandler) applicant(c *fiber.Ctx) error {
	applicant, err := h.controller.Applicant(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "applicant not found"})
	}
	return c.JSON(fiber.Map{"applicant": applicant})
}
