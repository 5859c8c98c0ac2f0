package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/amassarte/pizzeria-backend/internal/core"
	"github.com/amassarte/pizzeria-backend/internal/events"
)

const orderIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// OrderService owns order submission and fulfillment: checkout validation,
// order id generation, cart flattening, the ledger append and status
// transitions. Pricing itself lives in core.Evaluate; this service never
// re-derives totals.
type OrderService struct {
	ledger   core.OrderLedger
	store    core.ConfigStore
	eventBus *events.EventBus
	location *time.Location
	timeout  time.Duration
}

// NewOrderService creates an order service. timezone is the restaurant's
// regional timezone (order timestamps and promotion windows follow it).
func NewOrderService(
	ledger core.OrderLedger,
	store core.ConfigStore,
	eventBus *events.EventBus,
	timezone string,
	upstreamTimeout time.Duration,
) (*OrderService, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	return &OrderService{
		ledger:   ledger,
		store:    store,
		eventBus: eventBus,
		location: loc,
		timeout:  upstreamTimeout,
	}, nil
}

// Now returns the current instant on the restaurant's local clock.
func (s *OrderService) Now() time.Time {
	return time.Now().In(s.location)
}

// SubmitOrder validates the request, appends one row to the ledger and
// returns the generated order id. Nothing is persisted when validation or
// the append fails.
func (s *OrderService) SubmitOrder(ctx context.Context, req *core.OrderRequest) (string, error) {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cfg.Settings.SiteActive {
		return "", core.NewValidationError("site", cfg.Settings.SiteClosedMessage)
	}

	// A structured cart is rendered server-side into the items column.
	if strings.TrimSpace(req.Items) == "" && len(req.CartItems) > 0 {
		req.Items = FlattenItems(req.CartItems, req.Gifts, cfg)
	}

	if err := ValidateOrderRequest(req); err != nil {
		return "", err
	}

	orderID, err := GenerateOrderID(s.Now())
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}

	order := s.buildOrder(orderID, req)

	appendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.ledger.Append(appendCtx, order); err != nil {
		return "", fmt.Errorf("failed to record order: %w", err)
	}

	s.eventBus.PublishNewOrder(order)
	return orderID, nil
}

// ListOrders returns all persisted orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]*core.Order, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.ledger.List(listCtx)
}

// GetOrder returns one order by its generated id.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*core.Order, error) {
	getCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.ledger.GetByID(getCtx, id)
}

// UpdateStatus moves an order to a new status from the closed status set.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status core.OrderStatus) error {
	if !status.Valid() {
		return core.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	updateCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.ledger.UpdateStatus(updateCtx, id, status); err != nil {
		return err
	}

	s.eventBus.PublishOrderStatus(id, string(status))
	return nil
}

// Quote evaluates the price breakdown for a structured cart. This is the
// single pricing path every surface shares; presentation code must not
// re-derive totals.
func (s *OrderService) Quote(ctx context.Context, items []core.CartItem, delivery core.DeliveryType, zone string) (core.PricingResult, error) {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return core.PricingResult{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	zonePrice := 0
	if delivery == core.DeliveryHome && zone != "" {
		price, ok := cfg.ZonePrice(zone)
		if !ok {
			return core.PricingResult{}, core.NewValidationError("zona", fmt.Sprintf("unknown zone %q", zone))
		}
		zonePrice = price
	}

	in := core.PricingInput{
		Items:        items,
		DeliveryType: delivery,
		Zone:         zone,
		ZonePrice:    zonePrice,
	}
	return core.Evaluate(in, cfg, s.Now()), nil
}

// ValidateOrderRequest enforces the checkout preconditions: name and phone
// always, address and zone only for home delivery.
func ValidateOrderRequest(req *core.OrderRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return core.NewValidationError("nombre", "el nombre es requerido")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return core.NewValidationError("telefono", "el teléfono es requerido")
	}
	if strings.TrimSpace(req.Items) == "" {
		return core.NewValidationError("items", "el pedido debe contener items")
	}
	if !req.DeliveryType.Valid() {
		return core.NewValidationError("tipoEntrega", fmt.Sprintf("tipo de entrega inválido %q", req.DeliveryType))
	}
	if !req.Payment.Valid() {
		return core.NewValidationError("formaPago", fmt.Sprintf("forma de pago inválida %q", req.Payment))
	}

	if req.DeliveryType == core.DeliveryHome {
		if strings.TrimSpace(req.Address) == "" {
			return core.NewValidationError("direccion", "la dirección es requerida para domicilio")
		}
		if strings.TrimSpace(req.Zone) == "" {
			return core.NewValidationError("zona", "la zona de entrega es requerida para domicilio")
		}
	}

	return nil
}

// buildOrder renders the validated request into a ledger row using the
// restaurant's local clock.
func (s *OrderService) buildOrder(orderID string, req *core.OrderRequest) *core.Order {
	now := s.Now()

	zoneInfo := "N/A"
	if req.DeliveryType == core.DeliveryHome && req.Zone != "" {
		zoneInfo = fmt.Sprintf("%s ($%d)", req.Zone, int(req.DeliveryFee))
	}

	address := req.Address
	if strings.TrimSpace(address) == "" {
		address = "N/A"
	}

	return &core.Order{
		ID:           orderID,
		Date:         now.Format("02/01/2006"),
		Time:         now.Format("15:04:05"),
		CustomerName: req.Name,
		Phone:        NormalizePhone(req.Phone),
		ZoneInfo:     zoneInfo,
		Address:      address,
		DeliveryType: req.DeliveryType.Label(),
		PaymentType:  req.Payment.Label(),
		Items:        req.Items,
		Notes:        req.Notes,
		Total:        req.Total,
		Status:       core.StatusPending,
	}
}

// GenerateOrderID builds a tracking id of the form
// PED-<base36 millisecond timestamp>-<4 random base36 chars>, uppercased.
func GenerateOrderID(now time.Time) (string, error) {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderIDAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = orderIDAlphabet[n.Int64()]
	}

	return fmt.Sprintf("PED-%s-%s", timestamp, strings.ToUpper(string(suffix))), nil
}

// NormalizePhone prefixes Colombian numbers with +57 when no country code
// is present.
func NormalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}
	return "+57" + trimmed
}

// FlattenItems renders the cart lines and qualifying gifts into the single
// human-readable string stored in the ledger's items column.
func FlattenItems(items []core.CartItem, gifts []core.GiftLine, cfg *core.StoreConfig) string {
	parts := make([]string, 0, len(items)+len(gifts))

	for _, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.Name)

		if opts := item.Options; opts != nil {
			if opts.Size != "" {
				fmt.Fprintf(&b, " [%s]", capitalize(string(opts.Size)))
			}
			if opts.Style == "mitad" && opts.HalfOne != nil && opts.HalfTwo != nil {
				fmt.Fprintf(&b, " (Mitad: %s + %s)", opts.HalfOne.Name, opts.HalfTwo.Name)
			}
			if opts.BaseType != "" {
				fmt.Fprintf(&b, " [Base: %s]", baseLabel(cfg, opts.BaseType))
			}
			if len(opts.Addons) > 0 {
				names := make([]string, len(opts.Addons))
				for i, a := range opts.Addons {
					names[i] = a.Name
				}
				fmt.Fprintf(&b, " + Adicionales: %s", strings.Join(names, ", "))
			}
		}

		fmt.Fprintf(&b, " (%s)", core.FormatPrice(item.Price))
		parts = append(parts, b.String())
	}

	for _, gift := range gifts {
		name := gift.GiftItemName
		if name == "" {
			name = "Producto Sorpresa"
		}
		parts = append(parts, fmt.Sprintf("🎁 REGALO: %s (GRATIS)", name))
	}

	return strings.Join(parts, " || ")
}

// baseLabel resolves a base type slug to its display label.
func baseLabel(cfg *core.StoreConfig, value string) string {
	if cfg != nil {
		for _, base := range cfg.BaseTypes {
			if base.Value == value {
				return base.Label
			}
		}
	}
	return value
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
