package jsonstore

import "github.com/amassarte/pizzeria-backend/internal/core"

// DefaultConfig returns the seed configuration document: the launch menu,
// the Cartagena delivery zones, the addon catalog and the base types. It is
// also what the seeder writes to disk.
func DefaultConfig() *core.StoreConfig {
	return &core.StoreConfig{
		Settings: core.Settings{
			ShowDrinks:        true,
			ShowImages:        true,
			SiteActive:        true,
			SiteClosedMessage: "Estamos en mantenimiento, volvemos pronto.",
			Promotions: core.Promotions{
				TwoForOne:    core.TwoForOnePromo{Active: false, DayOfWeek: 6},
				FreeDelivery: core.FreeDeliveryPromo{Active: false},
				Custom:       []core.Promotion{},
			},
		},
		Zones: []core.Zone{
			{Name: "20 de julio", Price: 2000},
			{Name: "Sucre", Price: 2000},
			{Name: "Vista hermosa", Price: 2000},
			{Name: "Luis Carlos galán", Price: 2000},
			{Name: "San Pedro mártir", Price: 3000},
			{Name: "Campestre", Price: 3000},
			{Name: "Caracoles", Price: 4000},
			{Name: "Almirante", Price: 4000},
			{Name: "Socorro", Price: 5000},
			{Name: "Bocagrande", Price: 7000},
			{Name: "Castillogrande", Price: 8000},
			{Name: "Manga", Price: 5000},
			{Name: "Pie de la Popa", Price: 4000},
			{Name: "Crespo", Price: 8000},
			{Name: "Zona Norte", Price: 10000},
			{Name: "Turbaco", Price: 15000},
		},
		Addons: map[string][]core.Addon{
			"salsas": {
				{ID: "s1", Name: "Salsa napolitana", Price: 5000, Available: true},
				{ID: "s2", Name: "Bechamel", Price: 5000, Available: true},
			},
			"quesos": {
				{ID: "q1", Name: "Queso mozzarella", Price: 5000, Available: true},
				{ID: "q2", Name: "Queso costeño", Price: 5000, Available: true},
			},
			"carnes": {
				{ID: "c1", Name: "Jamón ahumado", Price: 5000, Available: true},
				{ID: "c2", Name: "Jamón serrano", Price: 5000, Available: true},
				{ID: "c3", Name: "Carne desmechada", Price: 5000, Available: true},
				{ID: "c4", Name: "Pollo desmechado", Price: 5000, Available: true},
				{ID: "c5", Name: "Chorizo", Price: 5000, Available: true},
				{ID: "c6", Name: "Pepperoni", Price: 5000, Available: true},
				{ID: "c7", Name: "Salami", Price: 5000, Available: true},
				{ID: "c8", Name: "Tocineta crocante", Price: 5000, Available: true},
			},
			"verduras": {
				{ID: "v1", Name: "Tomate cherry", Price: 5000, Available: true},
				{ID: "v2", Name: "Pico de gallo", Price: 5000, Available: true},
				{ID: "v3", Name: "Chimichurri", Price: 5000, Available: true},
				{ID: "v4", Name: "Champiñones", Price: 5000, Available: true},
				{ID: "v5", Name: "Cebolla", Price: 5000, Available: true},
				{ID: "v6", Name: "Maíz", Price: 5000, Available: true},
				{ID: "v7", Name: "Pimentón", Price: 5000, Available: true},
			},
			"dulces": {
				{ID: "d1", Name: "Plátano maduro", Price: 5000, Available: true},
				{ID: "d2", Name: "Piña caramelizada", Price: 5000, Available: true},
				{ID: "d3", Name: "Cebolla caramelizada", Price: 5000, Available: true},
			},
		},
		Menu: map[string][]core.MenuItem{
			"clasicas": {
				{ID: 1, Name: "Jamón Tradición", Description: "Salsa napolitana, queso mozzarella, jamón ahumado", Prices: core.Prices{Personal: 19000, Grande: 33000}, Tags: []string{}, Available: true},
				{ID: 2, Name: "Hawaiana", Description: "Salsa napolitana, queso mozzarella, jamón ahumado, piña caramelizada", Prices: core.Prices{Personal: 22000, Grande: 36000}, Tags: []string{"popular"}, Available: true},
				{ID: 3, Name: "Pollo Champiñón", Description: "Salsa Bechamel, queso mozzarella, pollo desmechado, champiñones", Prices: core.Prices{Personal: 26000, Grande: 45000}, Tags: []string{}, Available: true},
				{ID: 4, Name: "Pepperoni", Description: "Salsa napolitana, queso mozzarella, pepperoni", Prices: core.Prices{Personal: 24000, Grande: 43000}, Tags: []string{"popular"}, Available: true},
				{ID: 5, Name: "Salami", Description: "Salsa napolitana, queso mozzarella, salami", Prices: core.Prices{Personal: 25000, Grande: 44000}, Tags: []string{}, Available: true},
				{ID: 6, Name: "Vegetariana", Description: "Salsa napolitana, queso mozzarella, cebolla, maíz, pimentón, champiñones, aceite de perejil", Prices: core.Prices{Personal: 23000, Grande: 39000}, Tags: []string{"veg"}, Available: true},
				{ID: 50, Name: "Mitad de Cada Una", Description: "Escoge 2 pizzas diferentes y lleva mitad de cada una.", Prices: core.Prices{Personal: 0, Grande: 0}, Tags: []string{"popular"}, Available: true},
			},
			"especiales": {
				{ID: 7, Name: "Mediterráneo cherry", Description: "Salsa napolitana, queso mozzarella, tomate cherry, jamón serrano, aceite de oliva achiotado", Prices: core.Prices{Personal: 26000, Grande: 45000}, Tags: []string{"gourmet"}, Available: true},
				{ID: 8, Name: "Plátano stracciato amaSSarte", Description: "Salsa napolitana, queso mozzarella, carne desmechada, plátano maduro, queso costeño, cebollín chino", Prices: core.Prices{Personal: 27000, Grande: 47000}, Tags: []string{"chef-choice"}, Available: true},
				{ID: 9, Name: "Pico de pollo", Description: "Salsa napolitana, queso mozzarella, pollo desmechado, pico e gallo", Prices: core.Prices{Personal: 24000, Grande: 43000}, Tags: []string{}, Available: true},
				{ID: 10, Name: "Pico di Manzo", Description: "Salsa napolitana, queso mozzarella, carne desmechada, pico e gallo", Prices: core.Prices{Personal: 25000, Grande: 45000}, Tags: []string{"gourmet"}, Available: true},
				{ID: 11, Name: "Crocancia picant-dulc", Description: "Salsa napolitana, queso mozzarella, pepperoni, tocineta crocante, cebolla dulce", Prices: core.Prices{Personal: 26000, Grande: 45000}, Tags: []string{"spicy"}, Available: true},
				{ID: 12, Name: "Chimichori amaSSarte", Description: "Salsa napolitana, queso mozzarella, chorizo, chimichurri", Prices: core.Prices{Personal: 27000, Grande: 47000}, Tags: []string{}, Available: true},
			},
			"bebidas": {
				{ID: 13, Name: "Limonada Casera", Description: "Limones frescos, menta y un toque de jengibre.", Prices: core.Prices{Personal: 13000, Grande: 13000}, Tags: []string{}, Available: true},
				{ID: 14, Name: "Cerveza Artesanal IPA", Description: "Cervecería local, notas cítricas.", Prices: core.Prices{Personal: 14000, Grande: 14000}, Tags: []string{}, Available: true},
				{ID: 15, Name: "Vino Tinto Malbec", Description: "Copa de la casa.", Prices: core.Prices{Personal: 15000, Grande: 15000}, Tags: []string{}, Available: true},
				{ID: 16, Name: "Agua Mineral con Gas", Description: "Refrescante y pura, con burbujas naturales.", Prices: core.Prices{Personal: 8000, Grande: 8000}, Tags: []string{}, Available: true},
				{ID: 17, Name: "Refresco Natural", Description: "Jugo fresco de frutas tropicales del día.", Prices: core.Prices{Personal: 10000, Grande: 10000}, Tags: []string{}, Available: true},
				{ID: 18, Name: "Gaseosa Premium", Description: "Bebida carbonatada gourmet de importación.", Prices: core.Prices{Personal: 9000, Grande: 9000}, Tags: []string{}, Available: true},
			},
		},
		BaseTypes: []core.BaseType{
			{Value: "tomate", Label: "Salsa de Tomate"},
			{Value: "blanca", Label: "Base Blanca"},
			{Value: "barbeque", Label: "Base BBQ"},
		},
	}
}
