package registry

import (
	"fmt"
	"sort"
)

// SortKey selects the field the store is reordered by.
type SortKey int

const (
	SortByID SortKey = iota
	SortByName
	SortByCategory
	SortByDate
	SortByStatus
)

// String returns the display name of the sort key.
func (k SortKey) String() string {
	switch k {
	case SortByID:
		return "id"
	case SortByName:
		return "name"
	case SortByCategory:
		return "category"
	case SortByDate:
		return "date"
	case SortByStatus:
		return "status"
	}
	return "unknown"
}

// Sort reorders the store in place by the given key and persists the new
// order. The sort is stable: records with equal keys keep their relative
// order. Dates compare as text, which is chronological for the zero-padded
// YYYY-MM-DD form; for status, descending puts Lost before Found.
func (r *Registry) Sort(key SortKey, ascending bool) error {
	less, err := r.lessFunc(key)
	if err != nil {
		return err
	}
	if ascending {
		sort.SliceStable(r.items, less)
	} else {
		// Swapped operands keep the sort stable for equal keys.
		sort.SliceStable(r.items, func(i, j int) bool { return less(j, i) })
	}
	return r.Save()
}

func (r *Registry) lessFunc(key SortKey) (func(i, j int) bool, error) {
	switch key {
	case SortByID:
		return func(i, j int) bool { return r.items[i].ID < r.items[j].ID }, nil
	case SortByName:
		return func(i, j int) bool { return r.items[i].Name < r.items[j].Name }, nil
	case SortByCategory:
		return func(i, j int) bool { return r.items[i].Category < r.items[j].Category }, nil
	case SortByDate:
		return func(i, j int) bool { return r.items[i].Date.Before(r.items[j].Date) }, nil
	case SortByStatus:
		return func(i, j int) bool { return r.items[i].Status < r.items[j].Status }, nil
	}
	return nil, fmt.Errorf("registry: unknown sort key %d", key)
}
