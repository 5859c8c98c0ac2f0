package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday, so weekday-gated promotions can be pinned on or off it.
var tuesdayNoon = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

func personalPizza(id, price int) CartItem {
	return CartItem{
		ID:       id,
		Name:     "Pizza",
		Price:    price,
		Quantity: 1,
		Type:     "pizza",
		Options:  &ItemOptions{Size: SizePersonal},
	}
}

func configWith(promos Promotions) *StoreConfig {
	return &StoreConfig{
		Settings: Settings{Promotions: promos},
		Zones:    []Zone{{Name: "Manga", Price: 5000}},
	}
}

func homeDelivery(items []CartItem, zone string, zonePrice int) PricingInput {
	return PricingInput{
		Items:        items,
		DeliveryType: DeliveryHome,
		Zone:         zone,
		ZonePrice:    zonePrice,
	}
}

func TestEvaluateEmptyCart(t *testing.T) {
	cfg := configWith(Promotions{
		FreeDelivery: FreeDeliveryPromo{Active: true},
		Custom: []Promotion{
			{ID: "g", Logic: LogicGift, Active: true, MinOrderValue: 0, GiftItemName: "Brownie"},
		},
	})

	result := Evaluate(homeDelivery(nil, "Manga", 5000), cfg, tuesdayNoon)

	assert.Zero(t, result.RawSubtotal)
	assert.Zero(t, result.Discount)
	assert.Zero(t, result.DeliveryFee)
	assert.Zero(t, result.FinalTotal)
	assert.Empty(t, result.Gifts)
}

func TestEvaluateNoPromotions(t *testing.T) {
	items := []CartItem{personalPizza(1, 19000)}
	result := Evaluate(homeDelivery(items, "Manga", 5000), configWith(Promotions{}), tuesdayNoon)

	assert.Equal(t, 19000, result.RawSubtotal)
	assert.Zero(t, result.Discount)
	assert.Equal(t, 5000, result.DeliveryFee)
	assert.Equal(t, 24000, result.FinalTotal)
}

func TestTwoForOnePairsBilledAtHigherPrice(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
	})
	items := []CartItem{personalPizza(1, 19000), personalPizza(2, 22000)}

	result := Evaluate(homeDelivery(items, "Manga", 5000), cfg, tuesdayNoon)

	assert.Equal(t, 41000, result.RawSubtotal)
	assert.Equal(t, 19000, result.Discount)
	assert.Equal(t, 22000+5000, result.FinalTotal)
}

func TestTwoForOneOddUnitChargedInFull(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
	})
	items := []CartItem{
		personalPizza(1, 30000),
		personalPizza(2, 25000),
		personalPizza(3, 20000),
	}

	result := Evaluate(PricingInput{Items: items, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	// Sorted desc [30000 25000 20000]: indices 0 and 2 are charged.
	assert.Equal(t, 75000, result.RawSubtotal)
	assert.Equal(t, 25000, result.Discount)
	assert.Equal(t, 50000, result.FinalTotal)
}

func TestTwoForOneExpandsQuantities(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
	})
	item := personalPizza(1, 20000)
	item.Quantity = 2

	result := Evaluate(PricingInput{Items: []CartItem{item}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	assert.Equal(t, 40000, result.RawSubtotal)
	assert.Equal(t, 20000, result.Discount)
	assert.Equal(t, 20000, result.FinalTotal)
}

func TestTwoForOneIgnoresNonPersonalSizes(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
	})
	grande := CartItem{ID: 1, Price: 33000, Quantity: 2, Options: &ItemOptions{Size: SizeGrande}}
	noOptions := CartItem{ID: 13, Price: 13000, Quantity: 2, Type: "bebida"}

	result := Evaluate(PricingInput{Items: []CartItem{grande, noOptions}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	assert.Zero(t, result.Discount)
	assert.Equal(t, 92000, result.FinalTotal)
}

func TestTwoForOneInactiveOnOtherDays(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday()) + 1},
	})
	items := []CartItem{personalPizza(1, 19000), personalPizza(2, 22000)}

	result := Evaluate(PricingInput{Items: items, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	assert.Zero(t, result.Discount)
	assert.Equal(t, 41000, result.FinalTotal)
}

func TestDiscountTakesMaximumPercent(t *testing.T) {
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "d10", Logic: LogicDiscount, Active: true, DiscountPercent: 10},
			{ID: "d25", Logic: LogicDiscount, Active: true, DiscountPercent: 25},
			{ID: "d50", Logic: LogicDiscount, Active: false, DiscountPercent: 50},
		},
	})
	items := []CartItem{personalPizza(1, 20000)}

	result := Evaluate(PricingInput{Items: items, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	assert.Equal(t, 25, result.AppliedDiscountPercent)
	assert.Equal(t, 5000, result.Discount)
	assert.Equal(t, 15000, result.FinalTotal)
}

func TestDiscountAppliesAfterTwoForOne(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
		Custom: []Promotion{
			{ID: "d10", Logic: LogicDiscount, Active: true, DiscountPercent: 10},
		},
	})
	items := []CartItem{personalPizza(1, 19000), personalPizza(2, 22000)}

	result := Evaluate(PricingInput{Items: items, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)

	// 2x1 leaves 22000, then 10% off.
	assert.Equal(t, 19800, result.FinalTotal)
	assert.Equal(t, 41000-19800, result.Discount)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	cfg := configWith(Promotions{
		TwoForOne: TwoForOnePromo{Active: true, DayOfWeek: int(tuesdayNoon.Weekday())},
		Custom: []Promotion{
			{ID: "d", Logic: LogicDiscount, Active: true, DiscountPercent: 15},
			{ID: "g", Logic: LogicGift, Active: true, MinOrderValue: 10000, GiftItemName: "Brownie"},
		},
	})
	in := homeDelivery([]CartItem{personalPizza(1, 19000), personalPizza(2, 22000)}, "Manga", 5000)

	first := Evaluate(in, cfg, tuesdayNoon)
	second := Evaluate(in, cfg, tuesdayNoon)

	assert.Equal(t, first, second)
}

func TestFreeDeliveryOverridesEverything(t *testing.T) {
	cfg := configWith(Promotions{
		FreeDelivery: FreeDeliveryPromo{Active: true},
		Custom: []Promotion{
			{ID: "ld", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 3000},
		},
	})
	items := []CartItem{personalPizza(1, 19000)}

	result := Evaluate(homeDelivery(items, "Crespo", 8000), cfg, tuesdayNoon)

	assert.Zero(t, result.DeliveryFee)
	assert.Equal(t, 19000, result.FinalTotal)
}

func TestLimitDeliveryTakesLowestFee(t *testing.T) {
	items := []CartItem{personalPizza(1, 19000)}
	promos := Promotions{
		Custom: []Promotion{
			{ID: "a", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 4000},
		},
	}

	base := Evaluate(homeDelivery(items, "Manga", 5000), configWith(promos), tuesdayNoon)
	assert.Equal(t, 4000, base.DeliveryFee)

	// Adding more valid limit_delivery promotions never raises the fee.
	promos.Custom = append(promos.Custom,
		Promotion{ID: "b", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 2000},
		Promotion{ID: "c", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 6000},
	)
	stacked := Evaluate(homeDelivery(items, "Manga", 5000), configWith(promos), tuesdayNoon)
	assert.LessOrEqual(t, stacked.DeliveryFee, base.DeliveryFee)
	assert.Equal(t, 2000, stacked.DeliveryFee)
}

func TestLimitDeliveryZoneFilter(t *testing.T) {
	items := []CartItem{personalPizza(1, 19000)}
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "ld", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 0, ValidZoneIDs: []string{"Manga"}},
		},
	})

	inZone := Evaluate(homeDelivery(items, "Manga", 5000), cfg, tuesdayNoon)
	assert.Zero(t, inZone.DeliveryFee)

	outOfZone := Evaluate(homeDelivery(items, "Crespo", 8000), cfg, tuesdayNoon)
	assert.Equal(t, 8000, outOfZone.DeliveryFee)
}

func TestLimitDeliveryEmptyZoneListAppliesEverywhere(t *testing.T) {
	items := []CartItem{personalPizza(1, 19000)}
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "ld", Logic: LogicLimitDelivery, Active: true, DeliveryPrice: 1000},
		},
	})

	result := Evaluate(homeDelivery(items, "Turbaco", 15000), cfg, tuesdayNoon)
	assert.Equal(t, 1000, result.DeliveryFee)
}

func TestDeliveryFeeZeroForPickup(t *testing.T) {
	items := []CartItem{personalPizza(1, 19000)}
	result := Evaluate(PricingInput{Items: items, DeliveryType: DeliveryPickup}, configWith(Promotions{}), tuesdayNoon)
	assert.Zero(t, result.DeliveryFee)
}

func TestGiftThresholdIsInclusive(t *testing.T) {
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "g", Logic: LogicGift, Active: true, MinOrderValue: 19000, GiftItemName: "Brownie"},
		},
	})

	at := Evaluate(PricingInput{Items: []CartItem{personalPizza(1, 19000)}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)
	require.Len(t, at.Gifts, 1)
	assert.Equal(t, "Brownie", at.Gifts[0].GiftItemName)

	below := Evaluate(PricingInput{Items: []CartItem{personalPizza(1, 18999)}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)
	assert.Empty(t, below.Gifts)
}

func TestMultipleQualifyingGiftsAllShown(t *testing.T) {
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "g1", Logic: LogicGift, Active: true, MinOrderValue: 10000, GiftItemName: "Brownie"},
			{ID: "g2", Logic: LogicGift, Active: true, MinOrderValue: 15000, GiftItemName: "Limonada"},
		},
	})

	result := Evaluate(PricingInput{Items: []CartItem{personalPizza(1, 20000)}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)
	assert.Len(t, result.Gifts, 2)
}

func TestGiftQualifiesAgainstDiscountedSubtotal(t *testing.T) {
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "d", Logic: LogicDiscount, Active: true, DiscountPercent: 50},
			{ID: "g", Logic: LogicGift, Active: true, MinOrderValue: 15000, GiftItemName: "Brownie"},
		},
	})

	// Raw 20000 but discounted to 10000, below the 15000 threshold.
	result := Evaluate(PricingInput{Items: []CartItem{personalPizza(1, 20000)}, DeliveryType: DeliveryPickup}, cfg, tuesdayNoon)
	assert.Empty(t, result.Gifts)
}

func TestUnknownPromotionLogicContributesNothing(t *testing.T) {
	cfg := configWith(Promotions{
		Custom: []Promotion{
			{ID: "x", Logic: "combo_mega", Active: true, DiscountPercent: 90, DeliveryPrice: 0},
		},
	})
	items := []CartItem{personalPizza(1, 19000)}

	result := Evaluate(homeDelivery(items, "Manga", 5000), cfg, tuesdayNoon)

	assert.Zero(t, result.Discount)
	assert.Equal(t, 5000, result.DeliveryFee)
	assert.Equal(t, 24000, result.FinalTotal)
}

func TestPromotionValidityWindows(t *testing.T) {
	base := Promotion{ID: "p", Logic: LogicDiscount, Active: true, DiscountPercent: 10}

	tests := []struct {
		name  string
		tweak func(*Promotion)
		want  bool
	}{
		{"active, no window", func(*Promotion) {}, true},
		{"inactive", func(p *Promotion) { p.Active = false }, false},
		{"matching weekday", func(p *Promotion) { p.DaysOfWeek = []int{int(tuesdayNoon.Weekday())} }, true},
		{"other weekday", func(p *Promotion) { p.DaysOfWeek = []int{0} }, false},
		{"empty weekday list means every day", func(p *Promotion) { p.DaysOfWeek = []int{} }, true},
		{"start date today", func(p *Promotion) { p.StartDate = "2025-06-10" }, true},
		{"start date tomorrow", func(p *Promotion) { p.StartDate = "2025-06-11" }, false},
		{"end date today", func(p *Promotion) { p.EndDate = "2025-06-10" }, true},
		{"end date yesterday", func(p *Promotion) { p.EndDate = "2025-06-09" }, false},
		{"inside hour window", func(p *Promotion) { p.StartHour = "12:00"; p.EndHour = "14:00" }, true},
		{"before hour window", func(p *Promotion) { p.StartHour = "18:00" }, false},
		{"after hour window", func(p *Promotion) { p.EndHour = "11:59" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := base
			tt.tweak(&promo)
			assert.Equal(t, tt.want, promotionValid(promo, tuesdayNoon))
		})
	}
}
