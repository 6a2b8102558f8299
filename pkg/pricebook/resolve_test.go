package pricebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/entities"
)

func TestResolvePlanned_Ranking(t *testing.T) {
	entries := []entities.PriceBookEntry{
		{EntryID: 1, ProductID: 7, SeasonYear: 2026, Price: 10, PriceUOM: "gal", Source: "estimated"},
		{EntryID: 2, ProductID: 7, SeasonYear: 2026, Price: 11, PriceUOM: "gal", Source: "awarded"},
		{EntryID: 3, ProductID: 7, SeasonYear: 2026, Price: 12, PriceUOM: "gal", Source: "manual"},
		{EntryID: 4, ProductID: 7, SeasonYear: 2025, Price: 99, PriceUOM: "gal", Source: "manual_override"}, // wrong year
	}
	r := ResolvePlanned(entries, 7, 2026)
	require.NotNil(t, r)
	assert.Equal(t, "manual", r.Source)
	assert.Equal(t, 12.0, r.Price)

	entries = append(entries, entities.PriceBookEntry{
		EntryID: 5, ProductID: 7, SeasonYear: 2026, Price: 13, PriceUOM: "gal", Source: "manual_override",
	})
	r = ResolvePlanned(entries, 7, 2026)
	require.NotNil(t, r)
	assert.Equal(t, "manual_override", r.Source)
}

func TestResolvePlanned_UnknownSourceRanksLast(t *testing.T) {
	entries := []entities.PriceBookEntry{
		{EntryID: 1, ProductID: 7, SeasonYear: 2026, Price: 20, PriceUOM: "gal", Source: "imported"},
		{EntryID: 2, ProductID: 7, SeasonYear: 2026, Price: 10, PriceUOM: "gal", Source: "estimated"},
	}
	r := ResolvePlanned(entries, 7, 2026)
	require.NotNil(t, r)
	assert.Equal(t, "estimated", r.Source)
}

func TestResolvePlanned_InvoiceSourceNeverSelected(t *testing.T) {
	// even as the only entry for the product/season
	entries := []entities.PriceBookEntry{
		{EntryID: 1, ProductID: 7, SeasonYear: 2026, Price: 9.5, PriceUOM: "gal", Source: "invoice"},
	}
	assert.Nil(t, ResolvePlanned(entries, 7, 2026))
}

func TestResolvePlanned_NoMatch(t *testing.T) {
	assert.Nil(t, ResolvePlanned(nil, 7, 2026))
	assert.Nil(t, ResolvePlanned([]entities.PriceBookEntry{
		{ProductID: 8, SeasonYear: 2026, Source: "manual"},
	}, 7, 2026))
}
