package payment

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenProxy is what the card-token endpoint needs from the gateway client.
type TokenProxy interface {
	RawCardToken(ctx context.Context, payload interface{}) (json.RawMessage, error)
}

// Handler exposes the card-tokenization proxy. The storefront calls it so
// the gateway secret stays server-side instead of shipping in a client
// bundle.
type Handler struct {
	gateway TokenProxy
	log     *zap.Logger
}

func NewHandler(gateway TokenProxy, log *zap.Logger) *Handler {
	return &Handler{gateway: gateway, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.All("/api/create-card-token", h.createCardToken)
}

func (h *Handler) createCardToken(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
	}

	payload, err := parseLenientBody(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Body inválido (não é JSON)"})
	}

	resp, err := h.gateway.RawCardToken(c.UserContext(), payload)
	if err != nil {
		// card fields may be in the payload, so only the gateway message
		// is logged
		h.log.Error("card tokenization failed", zap.Error(err))
		if gwErr, ok := err.(*Error); ok {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": gwErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar token"})
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(resp)
}

// parseLenientBody accepts either a JSON object body or a JSON-encoded
// string containing an object, matching what storefront clients actually
// send.
func parseLenientBody(body []byte) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		return payload, nil
	}

	var wrapped string
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(wrapped), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
