package core

import (
	"math"
	"strconv"
)

// FormatPrice renders a peso amount the way the storefront does: no
// decimals, dot thousands separators, e.g. "$ 19.000".
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	return sign + "$ " + string(out)
}

// HalfAndHalfPrice prices a pizza split between two menu items at the
// chosen size: half of each item's price, rounded to the nearest peso.
func HalfAndHalfPrice(a, b MenuItem, size Size) int {
	return int(math.Round(float64(a.Prices.ForSize(size))/2 + float64(b.Prices.ForSize(size))/2))
}

// TwoForOneItemPrice resolves the unit price of a selectable 2x1 cart
// promotion: the configured fixed price when set, otherwise the price of
// the single most expensive selected item at the given size.
func TwoForOneItemPrice(promo Promotion, selected []MenuItem, size Size) int {
	if promo.Price > 0 {
		return promo.Price
	}

	max := 0
	for _, item := range selected {
		if p := item.Prices.ForSize(size); p > max {
			max = p
		}
	}
	return max
}
