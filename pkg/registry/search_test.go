package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

func seedSearchRegistry(t *testing.T) *Registry {
	t.Helper()
	r := newTestRegistry(t)

	add := func(name string, cat item.Category, desc, date, loc string, status item.Status) int32 {
		d, err := item.ParseDate(date)
		require.NoError(t, err)
		it, err := item.New(name, cat, desc, d, loc, status)
		require.NoError(t, err)
		id, err := r.Add(it)
		require.NoError(t, err)
		return id
	}

	add("Black Wallet", item.CategoryAccessories, "Leather bifold", "2025-06-01", "Library", item.StatusLost)        // 100
	add("iPhone 13", item.CategoryElectronics, "Cracked screen", "2025-06-02", "Cafeteria", item.StatusFound)        // 101
	add("Blue Backpack", item.CategoryBags, "Nylon with laptop sleeve", "2025-06-01", "Gym", item.StatusLost)        // 102
	add("Wallet", item.CategoryAccessories, "Found near checkout", "2025-06-03", "Library entrance", item.StatusFound) // 103
	return r
}

func ids(r *Registry, positions []int) []int32 {
	if len(positions) == 0 {
		return nil
	}
	out := make([]int32, len(positions))
	for i, p := range positions {
		out[i] = r.At(p).ID
	}
	return out
}

func TestSearchText(t *testing.T) {
	r := seedSearchRegistry(t)

	tests := []struct {
		name   string
		field  item.Field
		query  string
		expect []int32
	}{
		{name: "name case-insensitive", field: item.FieldName, query: "wallet", expect: []int32{100, 103}},
		{name: "name exact case", field: item.FieldName, query: "WALLET", expect: []int32{100, 103}},
		{name: "name no hit", field: item.FieldName, query: "umbrella", expect: nil},
		{name: "category", field: item.FieldCategory, query: "electronics", expect: []int32{101}},
		{name: "description", field: item.FieldDescription, query: "laptop", expect: []int32{102}},
		{name: "location", field: item.FieldLocation, query: "library", expect: []int32{100, 103}},
		{name: "empty query matches all", field: item.FieldName, query: "", expect: []int32{100, 101, 102, 103}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SearchText(tt.field, tt.query)
			assert.Equal(t, tt.expect, ids(r, got))
		})
	}
}

func TestSearchResultsKeepStoreOrder(t *testing.T) {
	r := seedSearchRegistry(t)

	positions := r.SearchText(item.FieldLocation, "a")
	for i := 1; i < len(positions); i++ {
		assert.Less(t, positions[i-1], positions[i])
	}
}

func TestSearchDate(t *testing.T) {
	r := seedSearchRegistry(t)

	d, err := item.ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []int32{100, 102}, ids(r, r.SearchDate(d)))

	none, err := item.ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, r.SearchDate(none))
}

func TestSearchStatusExcludesMatched(t *testing.T) {
	r := seedSearchRegistry(t)

	assert.Equal(t, []int32{100, 102}, ids(r, r.SearchStatus(item.StatusLost)))
	assert.Equal(t, []int32{101, 103}, ids(r, r.SearchStatus(item.StatusFound)))

	// Matching the wallets removes both from plain status search.
	require.NoError(t, r.ConfirmMatch(100, 103))
	assert.Equal(t, []int32{102}, ids(r, r.SearchStatus(item.StatusLost)))
	assert.Equal(t, []int32{101}, ids(r, r.SearchStatus(item.StatusFound)))
}

func TestFilterMatchedAndClaimed(t *testing.T) {
	r := seedSearchRegistry(t)
	require.NoError(t, r.ConfirmMatch(100, 103))

	assert.Equal(t, []int32{100, 103}, ids(r, r.FilterMatched(true)))
	assert.Equal(t, []int32{101, 102}, ids(r, r.FilterMatched(false)))

	assert.Empty(t, r.FilterClaimed(true))
	require.NoError(t, r.MarkClaimed(100))
	assert.Equal(t, []int32{100, 103}, ids(r, r.FilterClaimed(true)))
	assert.Equal(t, []int32{101, 102}, ids(r, r.FilterClaimed(false)))
}
