package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amassarte/pizzeria-backend/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "store.json"))
}

func TestGetServesDefaultsWhenFileMissing(t *testing.T) {
	store := tempStore(t)

	cfg, err := store.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.Settings.SiteActive)
	assert.NotEmpty(t, cfg.Zones)
	assert.NotEmpty(t, cfg.Menu["clasicas"])
	assert.Len(t, cfg.BaseTypes, 3)
}

func TestUpdateThenGetRoundtrip(t *testing.T) {
	store := tempStore(t)

	cfg := DefaultConfig()
	cfg.Settings.Promotions.FreeDelivery.Active = true
	cfg.Settings.Promotions.Custom = []core.Promotion{
		{ID: "p1", Title: "Martes de descuento", Logic: core.LogicDiscount, Active: true, DiscountPercent: 20},
	}
	require.NoError(t, store.Update(context.Background(), cfg))

	// A fresh store instance must read the persisted document.
	reloaded := NewStore(store.path)
	got, err := reloaded.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, got.Settings.Promotions.FreeDelivery.Active)
	require.Len(t, got.Settings.Promotions.Custom, 1)
	assert.Equal(t, core.LogicDiscount, got.Settings.Promotions.Custom[0].Logic)
	assert.Equal(t, 20, got.Settings.Promotions.Custom[0].DiscountPercent)
}

func TestPartialDocumentKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	// A document carrying only zones: settings and menu fall back to the
	// defaults, mirroring the storefront's shallow merge.
	partial := `{"zones":[{"name":"Centro","price":2500}]}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := NewStore(path).Get(context.Background())
	require.NoError(t, err)

	require.Len(t, cfg.Zones, 1)
	assert.Equal(t, "Centro", cfg.Zones[0].Name)
	assert.True(t, cfg.Settings.SiteActive)
	assert.NotEmpty(t, cfg.Menu["clasicas"])
}

func TestGetReturnsIndependentCopies(t *testing.T) {
	store := tempStore(t)

	first, err := store.Get(context.Background())
	require.NoError(t, err)

	// Mutating one caller's document must not leak into the store.
	first.Settings.SiteActive = false
	first.Zones = append(first.Zones, core.Zone{Name: "Narnia", Price: 999})
	first.Menu["clasicas"][0].Name = "Hackeada"

	second, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Settings.SiteActive)
	assert.NotEqual(t, "Hackeada", second.Menu["clasicas"][0].Name)
	_, found := second.ZonePrice("Narnia")
	assert.False(t, found)
}

func TestUpdateDetachesFromCallerDocument(t *testing.T) {
	store := tempStore(t)

	cfg := DefaultConfig()
	cfg.Settings.SiteClosedMessage = "Volvemos pronto"
	require.NoError(t, store.Update(context.Background(), cfg))

	// Mutations after Update must not reach later readers.
	cfg.Settings.SiteClosedMessage = "mutated"
	cfg.Zones[0].Price = -1

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Volvemos pronto", got.Settings.SiteClosedMessage)
	assert.NotEqual(t, -1, got.Zones[0].Price)
}

func TestCorruptDocumentReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Get(context.Background())
	assert.Error(t, err)
}

func TestZoneLookup(t *testing.T) {
	cfg := DefaultConfig()

	price, ok := cfg.ZonePrice("Manga")
	require.True(t, ok)
	assert.Equal(t, 5000, price)

	_, ok = cfg.ZonePrice("Narnia")
	assert.False(t, ok)
}

func TestFindMenuItemAcrossCategories(t *testing.T) {
	cfg := DefaultConfig()

	item, ok := cfg.FindMenuItem(8)
	require.True(t, ok)
	assert.Equal(t, "Plátano stracciato amaSSarte", item.Name)

	_, ok = cfg.FindMenuItem(9999)
	assert.False(t, ok)
}
