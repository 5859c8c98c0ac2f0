package core

import "encoding/json"

// Cart is the ordered collection of line items for one visit. It is owned
// by a single session and mutated synchronously; pricing is recomputed from
// the current lines on every Evaluate call, never cached.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds a line to the cart. A line with the same id and byte-identical
// serialized options is merged by incrementing its quantity; anything else
// is appended as a new line. Adding a second selectable cart promotion
// returns ErrPromotionInCart and leaves the cart untouched.
func (c *Cart) AddItem(item CartItem) error {
	if item.Options != nil && item.Options.IsPromotion && c.HasPromotion() {
		return ErrPromotionInCart
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	key := optionsKey(item.Options)
	for i := range c.items {
		if c.items[i].ID == item.ID && optionsKey(c.items[i].Options) == key {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes the line at index. Out-of-range indexes are ignored.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// UpdateQuantity sets the quantity of the line at index. A quantity of zero
// or less removes the line.
func (c *Cart) UpdateQuantity(index, quantity int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(index)
		return
	}
	c.items[index].Quantity = quantity
}

// RemoveAddon removes one addon from the line at lineIndex, leaving the
// quantity and the remaining addons untouched. The line price is reduced by
// the removed addon's price.
func (c *Cart) RemoveAddon(lineIndex, addonIndex int) {
	if lineIndex < 0 || lineIndex >= len(c.items) {
		return
	}
	line := &c.items[lineIndex]
	if line.Options == nil || addonIndex < 0 || addonIndex >= len(line.Options.Addons) {
		return
	}

	removed := line.Options.Addons[addonIndex]
	line.Options.Addons = append(line.Options.Addons[:addonIndex], line.Options.Addons[addonIndex+1:]...)
	line.Price -= removed.Price
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns the total unit count across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// HasPromotion reports whether a selectable cart promotion line is present.
func (c *Cart) HasPromotion() bool {
	for _, item := range c.items {
		if item.Options != nil && item.Options.IsPromotion {
			return true
		}
	}
	return false
}

// optionsKey serializes options for the merge-identity check. Lines merge
// only when the serialization is byte-identical.
func optionsKey(opts *ItemOptions) string {
	if opts == nil {
		return ""
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return ""
	}
	return string(data)
}
