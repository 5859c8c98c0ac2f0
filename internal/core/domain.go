package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Size is a menu item size. A grande price of 0 means the size is not offered.
type Size string

const (
	SizePersonal Size = "personal"
	SizeGrande   Size = "grande"
)

// Prices holds the per-size prices of a menu item, in whole pesos.
type Prices struct {
	Personal int `json:"personal"`
	Grande   int `json:"grande"`
}

// ForSize returns the price for the given size (0 when the size is unknown).
func (p Prices) ForSize(size Size) int {
	switch size {
	case SizePersonal:
		return p.Personal
	case SizeGrande:
		return p.Grande
	default:
		return 0
	}
}

// MenuItem is a storefront product (pizza, portion or beverage).
// The id is unique within its menu category.
type MenuItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"desc"`
	Prices       Prices   `json:"prices"`
	Tags         []string `json:"tags"`
	Available    bool     `json:"available"`
	AllowedBases []string `json:"allowedBases,omitempty"`
}

// Addon is an extra ingredient, grouped under a free-form category name.
type Addon struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
}

// Zone is a named delivery area with a flat delivery fee.
type Zone struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// BaseType defines one selectable pizza base.
type BaseType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PromotionLogic discriminates the custom promotion variants.
type PromotionLogic string

const (
	LogicSimple        PromotionLogic = "simple"
	LogicTwoForOne     PromotionLogic = "2x1"
	LogicDiscount      PromotionLogic = "discount"
	LogicLimitDelivery PromotionLogic = "limit_delivery"
	LogicGift          PromotionLogic = "gift"
)

// Promotion is an admin-configured promotion. The Logic field selects the
// variant; fields outside the common block are only meaningful for the
// variant they belong to. An unrecognized Logic contributes nothing at
// evaluation time.
type Promotion struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Active      bool           `json:"active"`
	Logic       PromotionLogic `json:"logic,omitempty"`
	Badge       string         `json:"badge,omitempty"`
	Terms       string         `json:"terms,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`

	// Schedule window. Empty DaysOfWeek means every day; empty dates and
	// hours mean unbounded. Weekdays use 0=Sunday..6=Saturday.
	DaysOfWeek []int  `json:"daysOfWeek,omitempty"`
	StartDate  string `json:"startDate,omitempty"` // YYYY-MM-DD, inclusive
	EndDate    string `json:"endDate,omitempty"`   // YYYY-MM-DD, inclusive
	StartHour  string `json:"startHour,omitempty"` // HH:MM, inclusive
	EndHour    string `json:"endHour,omitempty"`   // HH:MM, inclusive

	// 2x1 variant: the customer picks ItemsToSelect items among
	// ValidItemIDs and pays only for the most expensive one, unless a
	// fixed Price is configured.
	ItemsToSelect int    `json:"itemsToSelect,omitempty"`
	ValidItemIDs  []int  `json:"validItemIds,omitempty"`
	ValidSizes    []Size `json:"validSizes,omitempty"`
	Price         int    `json:"price,omitempty"`

	// discount variant.
	DiscountPercent int `json:"discountPercent,omitempty"`

	// limit_delivery variant. Empty ValidZoneIDs means all zones.
	DeliveryPrice int      `json:"deliveryPrice,omitempty"`
	ValidZoneIDs  []string `json:"validZoneIds,omitempty"`

	// gift variant.
	MinOrderValue int    `json:"minOrderValue,omitempty"`
	GiftItemID    string `json:"giftItemId,omitempty"`
	GiftItemName  string `json:"giftItemName,omitempty"`
}

// TwoForOnePromo is the built-in 2x1 toggle for personal-size pizzas on a
// single weekday.
type TwoForOnePromo struct {
	Active    bool `json:"active"`
	DayOfWeek int  `json:"dayOfWeek"`
}

// FreeDeliveryPromo is the built-in toggle that zeroes the delivery fee.
type FreeDeliveryPromo struct {
	Active bool `json:"active"`
}

// Promotions groups the two built-in promotion slots and the open-ended
// list of custom promotions.
type Promotions struct {
	TwoForOne    TwoForOnePromo    `json:"twoForOne"`
	FreeDelivery FreeDeliveryPromo `json:"freeDelivery"`
	Custom       []Promotion       `json:"custom"`
}

// Settings holds the storefront toggles and the promotion configuration.
type Settings struct {
	ShowDrinks            bool       `json:"showDrinks"`
	ShowImages            bool       `json:"showImages"`
	SiteActive            bool       `json:"siteActive"`
	SiteClosedMessage     string     `json:"siteClosedMessage"`
	EstimatedDeliveryTime string     `json:"estimatedDeliveryTime,omitempty"`
	Promotions            Promotions `json:"promotions"`
}

// StoreConfig is the whole flat configuration document: settings, zones,
// addons, menu and base types. The admin replaces it wholesale.
type StoreConfig struct {
	Settings  Settings              `json:"settings"`
	Zones     []Zone                `json:"zones"`
	Addons    map[string][]Addon    `json:"addons"`
	Menu      map[string][]MenuItem `json:"menu"`
	BaseTypes []BaseType            `json:"baseTypes,omitempty"`
}

// ZonePrice returns the configured delivery fee for a zone name.
func (c *StoreConfig) ZonePrice(name string) (int, bool) {
	for _, z := range c.Zones {
		if z.Name == name {
			return z.Price, true
		}
	}
	return 0, false
}

// FindMenuItem looks an item up across every menu category.
func (c *StoreConfig) FindMenuItem(id int) (MenuItem, bool) {
	for _, items := range c.Menu {
		for _, item := range items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// HalfRef identifies one half of a half-and-half pizza.
type HalfRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AddonRef is an addon embedded in a cart line.
type AddonRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ItemOptions carries the per-line customization of a cart item. The JSON
// keys match the storefront's persisted order payload.
type ItemOptions struct {
	Style           string     `json:"tipoPizza,omitempty"` // completa | mitad | mitadCadaPizza
	HalfOne         *HalfRef   `json:"mitadPizza1,omitempty"`
	HalfTwo         *HalfRef   `json:"mitadPizza2,omitempty"`
	BaseType        string     `json:"tipoBase,omitempty"`
	Size            Size       `json:"tamaño,omitempty"`
	IsPromotion     bool       `json:"esPromocion,omitempty"`
	DiscountPercent int        `json:"porcentajeDescuento,omitempty"`
	Addons          []AddonRef `json:"adicionales,omitempty"`
}

// CartItem is one line of the cart. Price is the already-resolved unit price
// including size, base, addons and half-and-half blending.
type CartItem struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Price    int          `json:"price"`
	Quantity int          `json:"quantity"`
	Type     string       `json:"type,omitempty"` // pizza | porcion | bebida
	Options  *ItemOptions `json:"options,omitempty"`
}

// DeliveryType is how the order reaches the customer.
type DeliveryType string

const (
	DeliveryHome   DeliveryType = "domicilio"
	DeliveryPickup DeliveryType = "recoger"
	DeliveryDineIn DeliveryType = "comeraqui"
)

// Label returns the display name written to the ledger.
func (d DeliveryType) Label() string {
	switch d {
	case DeliveryHome:
		return "Envío a Domicilio"
	case DeliveryPickup:
		return "Recoger en Tienda"
	case DeliveryDineIn:
		return "Comer Aquí"
	default:
		return string(d)
	}
}

// Valid reports whether d is one of the accepted delivery types.
func (d DeliveryType) Valid() bool {
	switch d {
	case DeliveryHome, DeliveryPickup, DeliveryDineIn:
		return true
	}
	return false
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentTransfer PaymentMethod = "transferencia"
)

// Label returns the display name written to the ledger.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCash:
		return "Efectivo"
	case PaymentCard:
		return "Tarjeta"
	case PaymentTransfer:
		return "Transferencia"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the accepted payment methods.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// OrderStatus is the fulfillment state of a persisted order. Status is the
// only order field ever mutated after creation.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pendiente"
	StatusPreparing OrderStatus = "En Preparación"
	StatusReady     OrderStatus = "Listo"
	StatusOnTheWay  OrderStatus = "En Camino"
	StatusDelivered OrderStatus = "Entregado"
	StatusCancelled OrderStatus = "Pedido Cancelado"
)

// OrderStatuses is the closed set of accepted statuses.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusOnTheWay,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s belongs to the closed status set.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is one row of the order ledger (columns A through M).
type Order struct {
	LocalID      int         `json:"localId,omitempty"` // 1-based sheet row
	ID           string      `json:"id"`
	Date         string      `json:"fecha"`
	Time         string      `json:"hora"`
	CustomerName string      `json:"nombre"`
	Phone        string      `json:"telefono"`
	ZoneInfo     string      `json:"zona"` // "Manga ($5000)" or "N/A"
	Address      string      `json:"direccion"`
	DeliveryType string      `json:"tipoEntrega"`
	PaymentType  string      `json:"formaPago"`
	Items        string      `json:"items"`
	Notes        string      `json:"detalles"`
	Total        string      `json:"total"`
	Status       OrderStatus `json:"estado"`
}

// FlexInt decodes a JSON number or a numeric string. The storefront has
// historically sent costoDomicilio either way.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		parsed, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		n = int(parsed)
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// OrderRequest is the POST /api/order payload. The order lines arrive either
// pre-rendered in Items, or structured in CartItems (plus qualifying Gifts),
// in which case the server renders the items column itself.
type OrderRequest struct {
	Name         string        `json:"nombre"`
	Phone        string        `json:"telefono"`
	Address      string        `json:"direccion"`
	Zone         string        `json:"zona,omitempty"`
	DeliveryFee  FlexInt       `json:"costoDomicilio,omitempty"`
	DeliveryType DeliveryType  `json:"tipoEntrega"`
	Payment      PaymentMethod `json:"formaPago"`
	Notes        string        `json:"detallesAdicionales,omitempty"`
	Items        string        `json:"items"`
	CartItems    []CartItem    `json:"carrito,omitempty"`
	Gifts        []GiftLine    `json:"regalos,omitempty"`
	Total        string        `json:"total"`
}
