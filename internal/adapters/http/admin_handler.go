package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amassarte/pizzeria-backend/internal/core"
	"github.com/amassarte/pizzeria-backend/internal/events"
	"github.com/amassarte/pizzeria-backend/internal/middleware"
	"github.com/amassarte/pizzeria-backend/internal/service"
)

// AdminHandler serves the admin panel API: login, configuration replacement,
// the order board and the live event stream.
type AdminHandler struct {
	store        core.ConfigStore
	orderService *service.OrderService
	authService  *service.AuthService
	eventBus     *events.EventBus
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store core.ConfigStore, orderService *service.OrderService, authService *service.AuthService, eventBus *events.EventBus) *AdminHandler {
	return &AdminHandler{
		store:        store,
		orderService: orderService,
		authService:  authService,
		eventBus:     eventBus,
	}
}

// Login checks the admin password and sets the session cookie
// POST /api/login
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	token, err := h.authService.Login(c.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Contraseña incorrecta",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "login failed",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
	})
}

// Logout revokes the session and clears the cookie
// POST /api/logout
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.AuthCookieName); token != "" {
		if err := h.authService.Logout(c.Context(), token); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "logout failed",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "logged out successfully",
	})
}

// CheckAuth reports whether the caller holds a live session
// GET /api/check-auth
func (h *AdminHandler) CheckAuth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated": true,
	})
}

// UpdateConfig replaces the whole configuration document
// POST /api/config
func (h *AdminHandler) UpdateConfig(c *fiber.Ctx) error {
	var cfg core.StoreConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid configuration document",
		})
	}

	if err := h.store.Update(c.Context(), &cfg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save configuration",
		})
	}

	h.eventBus.PublishConfigUpdated()

	return c.JSON(fiber.Map{
		"message": "configuration updated",
	})
}

// ListOrders returns every ledger order, newest first
// GET /api/orders
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListOrders(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load orders",
		})
	}

	return c.JSON(orders)
}

// UpdateOrderStatus moves one order to a new status
// POST /api/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "order ID is required",
		})
	}

	var req struct {
		Status core.OrderStatus `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.orderService.UpdateStatus(c.Context(), orderID, req.Status); err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "order not found",
			})
		}
		if core.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "status updated",
	})
}

// Receipt downloads a PDF kitchen receipt for one order
// GET /api/orders/:id/receipt
func (h *AdminHandler) Receipt(c *fiber.Ctx) error {
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

	pdf, err := service.ExportReceiptPDF(order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate receipt",
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, orderID))
	return c.Send(pdf)
}

// SSEEvents handles Server-Sent Events for real-time admin updates
// GET /api/admin/events
func (h *AdminHandler) SSEEvents(c *fiber.Ctx) error {
	// Set headers for SSE
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	// The stream writer only runs after this handler returns, so the
	// subscription must be created and torn down inside it. The fiber Ctx
	// is recycled on return; only the request context survives streaming.
	reqCtx := c.Context()
	reqCtx.SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(reqCtx)
		defer cancel()

		subscriberID := uuid.New().String()
		eventChan := h.eventBus.Subscribe(ctx, subscriberID)

		streamEvents(w, eventChan, 30*time.Second)
	})

	return nil
}

// streamEvents writes the connection preamble, then forwards bus events to
// the client with a comment heartbeat between them so dead connections are
// detected. Returns when the subscription channel closes or a write fails.
func streamEvents(w *bufio.Writer, eventChan <-chan events.Event, heartbeat time.Duration) {
	if _, err := w.Write([]byte("event: connected\ndata: {\"message\":\"connected\"}\n\n")); err != nil {
		return
	}
	if err := w.Flush(); err != nil {
		return
	}

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}

			sseData, err := events.FormatSSE(event)
			if err != nil {
				fmt.Printf("Error formatting SSE: %v\n", err)
				continue
			}

			if _, err := w.Write([]byte(sseData)); err != nil {
				return
			}

			if err := w.Flush(); err != nil {
				return
			}

		case <-ticker.C:
			// Send heartbeat
			if _, err := w.Write([]byte(": heartbeat\n\n")); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}
