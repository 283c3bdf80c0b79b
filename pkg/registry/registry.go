// Package registry owns the collection of lost and found item records: id
// assignment, lookup, mutation, search, lost/found matching, sorting, and
// persistence to a single binary data file. Every mutating operation writes
// the whole store back to disk before returning.
package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

const (
	// firstID is the value of the id counter for a fresh store.
	firstID = 100

	// startCapacity is the initial backing capacity; growth doubles it.
	startCapacity = 10
)

// Registry is the record store. It is not safe for concurrent use; the
// application drives it from a single goroutine.
type Registry struct {
	path   string
	items  []item.Item
	nextID int32
}

// New returns an empty registry persisting to path. Call Load to pick up an
// existing data file.
func New(path string) *Registry {
	r := &Registry{path: path}
	r.reset()
	return r
}

// Path returns the data file path the registry persists to.
func (r *Registry) Path() string { return r.path }

// Len returns the number of live records.
func (r *Registry) Len() int { return len(r.items) }

// Capacity returns the current backing capacity. It starts at 10 and doubles
// on overflow; deletes never shrink it.
func (r *Registry) Capacity() int { return cap(r.items) }

// NextID returns the id the next added record will receive.
func (r *Registry) NextID() int32 { return r.nextID }

// At returns a copy of the record at position i in store order.
// It panics if i is out of range, like a slice index.
func (r *Registry) At(i int) item.Item { return r.items[i] }

// Get returns a copy of the record with the given id.
func (r *Registry) Get(id int32) (item.Item, error) {
	i := r.indexOf(id)
	if i < 0 {
		return item.Item{}, ErrNotFound
	}
	return r.items[i], nil
}

// All returns a copy of every record in store order.
func (r *Registry) All() []item.Item {
	out := make([]item.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Add validates the item, assigns it the next id, appends it, and persists.
// The stored record always starts unmatched and unclaimed regardless of the
// input flags. On a save failure the record is kept in memory and the
// returned error wraps ErrUnsaved.
func (r *Registry) Add(it *item.Item) (int32, error) {
	if err := it.Validate(); err != nil {
		return 0, err
	}

	stored := *it
	stored.ID = r.nextID
	stored.Matched = false
	stored.Claimed = false
	stored.MatchedItemID = item.NoMatch

	if len(r.items) == cap(r.items) {
		r.grow(len(r.items) + 1)
	}
	r.items = append(r.items, stored)
	r.nextID++

	return stored.ID, r.Save()
}

// Update describes a partial edit: nil fields keep their current value.
type Update struct {
	Name          *string
	Category      *item.Category
	Description   *string
	Date          *item.Date
	Location      *string
	Status        *item.Status
	PersonName    *string
	PersonContact *string
}

// Update applies the non-nil fields of u to the record with the given id,
// validates the result, and persists. An invalid result rejects the whole
// update; the record is never partially modified.
func (r *Registry) Update(id int32, u Update) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	edited := r.items[i]
	if u.Name != nil {
		edited.Name = *u.Name
	}
	if u.Category != nil {
		edited.Category = *u.Category
	}
	if u.Description != nil {
		edited.Description = *u.Description
	}
	if u.Date != nil {
		edited.Date = *u.Date
	}
	if u.Location != nil {
		edited.Location = *u.Location
	}
	if u.Status != nil {
		edited.Status = *u.Status
	}
	if u.PersonName != nil {
		edited.PersonName = *u.PersonName
	}
	if u.PersonContact != nil {
		edited.PersonContact = *u.PersonContact
	}

	if err := edited.Validate(); err != nil {
		return err
	}

	r.items[i] = edited
	return r.Save()
}

// Delete removes the record with the given id, shifting later records down
// so store order is preserved. A matched counterpart is left untouched; its
// link simply stops resolving.
func (r *Registry) Delete(id int32) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	copy(r.items[i:], r.items[i+1:])
	r.items = r.items[:len(r.items)-1]
	return r.Save()
}

// Clear removes every record and resets the id counter, then persists the
// empty store.
func (r *Registry) Clear() error {
	r.reset()
	return r.Save()
}

// Load reads the data file into the registry, replacing its contents. A
// missing or unreadable file, or one too short to carry a header, starts a
// fresh empty store. A readable header with an undecodable body empties the
// registry and reports ErrCorrupt so the caller can warn before the file is
// overwritten by the next save.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.reset()
		return nil
	}

	nextID, items, err := decodeStore(data)
	if err != nil {
		r.reset()
		if errors.Is(err, errShortHeader) {
			return nil
		}
		return err
	}

	r.nextID = nextID
	r.items = items
	return nil
}

// Save encodes the full store and overwrites the data file.
func (r *Registry) Save() error {
	if err := os.WriteFile(r.path, encodeStore(r.nextID, r.items), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsaved, err)
	}
	return nil
}

func (r *Registry) reset() {
	r.items = make([]item.Item, 0, startCapacity)
	r.nextID = firstID
}

// indexOf returns the position of the record with the given id, or -1.
func (r *Registry) indexOf(id int32) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// grow replaces the backing storage with a larger one, doubling from the
// current capacity until min fits, and copies the records over.
func (r *Registry) grow(min int) {
	next := make([]item.Item, len(r.items), capacityFor(cap(r.items), min))
	copy(next, r.items)
	r.items = next
}

// capacityFor doubles from the current capacity (at least startCapacity)
// until min records fit.
func capacityFor(current, min int) int {
	c := current
	if c < startCapacity {
		c = startCapacity
	}
	for c < min {
		c *= 2
	}
	return c
}
