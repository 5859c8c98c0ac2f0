package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amassarte/pizzeria-backend/internal/core"
	"github.com/amassarte/pizzeria-backend/internal/service"
)

// Handler serves the public storefront API: the configuration document,
// checkout quotes, order submission and order tracking.
type Handler struct {
	store        core.ConfigStore
	orderService *service.OrderService
}

// NewHandler creates a new storefront handler
func NewHandler(store core.ConfigStore, orderService *service.OrderService) *Handler {
	return &Handler{
		store:        store,
		orderService: orderService,
	}
}

// GetConfig returns the whole store configuration document
// GET /api/config
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.store.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load configuration",
		})
	}

	return c.JSON(cfg)
}

// Quote evaluates a cart server-side and returns the price breakdown
// POST /api/quote
func (h *Handler) Quote(c *fiber.Ctx) error {
	var req struct {
		Items        []core.CartItem   `json:"items"`
		DeliveryType core.DeliveryType `json:"tipoEntrega"`
		Zone         string            `json:"zona"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if !req.DeliveryType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid delivery type",
		})
	}

	result, err := h.orderService.Quote(c.Context(), req.Items, req.DeliveryType, req.Zone)
	if err != nil {
		if core.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to evaluate cart",
		})
	}

	return c.JSON(result)
}

// SubmitOrder validates and persists a new order
// POST /api/order
func (h *Handler) SubmitOrder(c *fiber.Ctx) error {
	var req core.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	orderID, err := h.orderService.SubmitOrder(c.Context(), &req)
	if err != nil {
		var verr *core.ValidationError
		if core.AsValidation(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Message,
				"field": verr.Field,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"orderId": orderID,
	})
}

// TrackOrder returns the public fulfillment view of one order
// GET /api/orders/:id/track
func (h *Handler) TrackOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "order ID is required",
		})
	}

	order, err := h.orderService.GetOrder(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load order",
		})
	}

	// Customer-facing view only; no personal data beyond what the customer
	// already entered themselves is needed here.
	return c.JSON(fiber.Map{
		"id":          order.ID,
		"fecha":       order.Date,
		"hora":        order.Time,
		"tipoEntrega": order.DeliveryType,
		"items":       order.Items,
		"total":       order.Total,
		"estado":      order.Status,
	})
}
