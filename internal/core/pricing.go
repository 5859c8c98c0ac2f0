package core

import (
	"math"
	"sort"
	"time"
)

// PricingInput is everything Evaluate needs besides the configuration and
// the clock: the cart lines and the resolved delivery selection. ZonePrice
// is the configured fee of the selected zone (0 for pickup or dine-in).
type PricingInput struct {
	Items        []CartItem
	DeliveryType DeliveryType
	Zone         string
	ZonePrice    int
}

// GiftLine is a zero-price display-only entry contributed by a qualifying
// gift promotion.
type GiftLine struct {
	PromotionID  string `json:"promotionId"`
	Title        string `json:"title"`
	GiftItemName string `json:"giftItemName"`
}

// PricingResult is the full price breakdown of a cart. All amounts are
// whole pesos.
type PricingResult struct {
	RawSubtotal            int        `json:"rawSubtotal"`
	Discount               int        `json:"discount"`
	AppliedDiscountPercent int        `json:"appliedDiscountPercent"`
	DeliveryFee            int        `json:"deliveryFee"`
	FinalTotal             int        `json:"finalTotal"`
	Gifts                  []GiftLine `json:"gifts,omitempty"`
}

// Evaluate computes the price breakdown for a cart under the current
// promotion configuration. It is a pure function of its arguments: the same
// cart, configuration and instant always produce the same result.
//
// now must carry the restaurant's local wall clock; promotion date and hour
// windows follow the local calendar, not UTC.
func Evaluate(in PricingInput, cfg *StoreConfig, now time.Time) PricingResult {
	if len(in.Items) == 0 {
		return PricingResult{}
	}

	rawSubtotal := 0
	for _, item := range in.Items {
		rawSubtotal += item.Price * item.Quantity
	}

	promos := cfg.Settings.Promotions

	// Built-in 2x1: on the configured weekday, personal-size lines are
	// expanded into individual units and billed in pairs at the higher
	// price of each pair. Everything else is billed normally.
	itemTotal := 0
	var personalUnits []int
	twoForOneToday := promos.TwoForOne.Active && int(now.Weekday()) == promos.TwoForOne.DayOfWeek

	for _, item := range in.Items {
		eligible := twoForOneToday && item.Options != nil && item.Options.Size == SizePersonal
		if eligible {
			for i := 0; i < item.Quantity; i++ {
				personalUnits = append(personalUnits, item.Price)
			}
		} else {
			itemTotal += item.Price * item.Quantity
		}
	}

	if len(personalUnits) > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(personalUnits)))
		for i, price := range personalUnits {
			// Even indices are the paid half of each pair; an
			// unpaired last unit is charged in full.
			if i%2 == 0 {
				itemTotal += price
			}
		}
	}

	// Percentage discount: highest valid percentage wins, no stacking.
	maxPercent := 0
	for _, p := range promos.Custom {
		if p.Logic == LogicDiscount && p.DiscountPercent > maxPercent && promotionValid(p, now) {
			maxPercent = p.DiscountPercent
		}
	}

	charged := itemTotal
	if maxPercent > 0 {
		charged = int(math.Round(float64(itemTotal) * (1 - float64(maxPercent)/100)))
	}

	deliveryFee := resolveDeliveryFee(in, promos, now)

	// Gifts qualify against the post-discount item subtotal, threshold
	// inclusive. Every qualifying gift is shown.
	var gifts []GiftLine
	for _, p := range promos.Custom {
		if p.Logic != LogicGift || !promotionValid(p, now) {
			continue
		}
		if charged >= p.MinOrderValue {
			gifts = append(gifts, GiftLine{
				PromotionID:  p.ID,
				Title:        p.Title,
				GiftItemName: p.GiftItemName,
			})
		}
	}

	return PricingResult{
		RawSubtotal:            rawSubtotal,
		Discount:               rawSubtotal - charged,
		AppliedDiscountPercent: maxPercent,
		DeliveryFee:            deliveryFee,
		FinalTotal:             charged + deliveryFee,
		Gifts:                  gifts,
	}
}

// resolveDeliveryFee resolves the delivery fee independently of the item
// pipeline: zone price, zeroed by the built-in free delivery toggle,
// otherwise capped by the lowest valid limit_delivery promotion matching
// the zone.
func resolveDeliveryFee(in PricingInput, promos Promotions, now time.Time) int {
	if in.DeliveryType != DeliveryHome {
		return 0
	}

	if promos.FreeDelivery.Active {
		return 0
	}

	fee := in.ZonePrice
	for _, p := range promos.Custom {
		if p.Logic != LogicLimitDelivery || !promotionValid(p, now) {
			continue
		}
		if !zoneMatches(p.ValidZoneIDs, in.Zone) {
			continue
		}
		if p.DeliveryPrice < fee {
			fee = p.DeliveryPrice
		}
	}
	return fee
}

// zoneMatches reports whether a limit_delivery promotion applies to the
// selected zone. An empty list applies to every zone.
func zoneMatches(validZones []string, zone string) bool {
	if len(validZones) == 0 {
		return true
	}
	for _, z := range validZones {
		if z == zone {
			return true
		}
	}
	return false
}

// promotionValid reports whether a promotion is live at the given instant.
// Empty DaysOfWeek means every day; date bounds are inclusive calendar
// dates and hour bounds are inclusive HH:MM times, both on the local clock.
func promotionValid(p Promotion, now time.Time) bool {
	if !p.Active {
		return false
	}

	if len(p.DaysOfWeek) > 0 {
		day := int(now.Weekday())
		found := false
		for _, d := range p.DaysOfWeek {
			if d == day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	today := now.Format("2006-01-02")
	if p.StartDate != "" && p.StartDate > today {
		return false
	}
	if p.EndDate != "" && p.EndDate < today {
		return false
	}

	hhmm := now.Format("15:04")
	if p.StartHour != "" && hhmm < p.StartHour {
		return false
	}
	if p.EndHour != "" && hhmm > p.EndHour {
		return false
	}

	return true
}
