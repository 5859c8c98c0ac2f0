package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$ 0"},
		{900, "$ 900"},
		{5000, "$ 5.000"},
		{19000, "$ 19.000"},
		{1250000, "$ 1.250.000"},
		{-4000, "-$ 4.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}

func TestHalfAndHalfPrice(t *testing.T) {
	jamon := MenuItem{ID: 1, Prices: Prices{Personal: 19000, Grande: 33000}}
	hawaiana := MenuItem{ID: 2, Prices: Prices{Personal: 22000, Grande: 36000}}

	assert.Equal(t, 34500, HalfAndHalfPrice(jamon, hawaiana, SizeGrande))
	assert.Equal(t, 20500, HalfAndHalfPrice(jamon, hawaiana, SizePersonal))

	// Odd prices round to the nearest peso.
	a := MenuItem{Prices: Prices{Personal: 19001}}
	b := MenuItem{Prices: Prices{Personal: 22000}}
	assert.Equal(t, 20501, HalfAndHalfPrice(a, b, SizePersonal))
}

func TestTwoForOneItemPrice(t *testing.T) {
	promo := Promotion{ID: "p", Logic: LogicTwoForOne}
	selected := []MenuItem{
		{ID: 1, Prices: Prices{Personal: 19000}},
		{ID: 3, Prices: Prices{Personal: 26000}},
	}

	assert.Equal(t, 26000, TwoForOneItemPrice(promo, selected, SizePersonal))

	promo.Price = 30000
	assert.Equal(t, 30000, TwoForOneItemPrice(promo, selected, SizePersonal))
}

func TestPricesForSize(t *testing.T) {
	p := Prices{Personal: 19000, Grande: 33000}
	assert.Equal(t, 19000, p.ForSize(SizePersonal))
	assert.Equal(t, 33000, p.ForSize(SizeGrande))
	assert.Zero(t, p.ForSize("mediana"))
}
