package thankyou

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/orders/:id/confirmation", h.getConfirmation)
}

func (h *Handler) getConfirmation(c *fiber.Ctx) error {
	resolution, err := h.service.Resolve(c.UserContext(), c.Params("id"), c.Query("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if resolution.State == StateNotFound {
		return c.Status(fiber.StatusNotFound).JSON(resolution)
	}
	return c.JSON(resolution)
}
