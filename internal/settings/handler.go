package settings

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/settings", h.getSettings)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Put("/settings", h.updateSettings)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Get())
}

func (h *Handler) updateSettings(c *fiber.Ctx) error {
	payload := new(StoreSettings)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.StoreName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "store_name is required"})
	}

	updated, err := h.service.Update(*payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}
