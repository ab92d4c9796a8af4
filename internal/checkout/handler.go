package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/techstore-br/techstore-backend/internal/cart"
	"github.com/techstore-br/techstore-backend/internal/order"
	"github.com/techstore-br/techstore-backend/internal/payment"
)

// User-facing notices, in Portuguese like the storefront.
const (
	msgEmptyCart     = "Seu carrinho está vazio."
	msgMissingCard   = "Por favor, preencha todos os dados do cartão."
	msgInvalidExpiry = "Data de validade inválida. Use o formato MM/AA."
	msgGenericError  = "Houve um erro ao processar seu pagamento. Tente novamente."
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

type customerPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	CPF     string `json:"cpf"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type cardPayload struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

type checkoutRequest struct {
	Customer       customerPayload `json:"customer"`
	PaymentMethod  string          `json:"payment_method"`
	Card           *cardPayload    `json:"card"`
	Installments   int             `json:"installments"`
	IdempotencyKey string          `json:"idempotency_key"`
}

func (h *Handler) submit(c *fiber.Ctx) error {
	sid := c.Get(cart.SessionHeader)
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session id"})
	}

	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Customer.Name == "" || payload.Customer.Email == "" || payload.Customer.CPF == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Preencha nome, e-mail e CPF."})
	}

	in := Input{
		SessionID: sid,
		Customer: order.Customer{
			Name:    payload.Customer.Name,
			Email:   payload.Customer.Email,
			CPF:     payload.Customer.CPF,
			Phone:   payload.Customer.Phone,
			Address: payload.Customer.Address,
		},
		Method:         payment.Method(payload.PaymentMethod),
		Installments:   payload.Installments,
		IdempotencyKey: payload.IdempotencyKey,
	}
	if in.IdempotencyKey == "" {
		in.IdempotencyKey = uuid.NewString()
	}
	if payload.Card != nil {
		in.Card = &payment.CardDetails{
			HolderName: payload.Card.HolderName,
			Number:     payload.Card.Number,
			Expiry:     payload.Card.Expiry,
			CVC:        payload.Card.CVC,
		}
	}

	confirmation, err := h.service.Submit(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgEmptyCart})
		case errors.Is(err, payment.ErrMissingCardFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgMissingCard})
		case errors.Is(err, payment.ErrInvalidExpiry):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgInvalidExpiry})
		case errors.Is(err, ErrUnsupportedMethod):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Forma de pagamento inválida."})
		default:
			// detail is already logged by the service; the customer
			// gets one generic retryable notice
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgGenericError})
		}
	}

	return c.Status(fiber.StatusOK).JSON(confirmation)
}
