// Package item defines the lost and found item record and its field types.
// Records are validated before they enter the registry; an Item that fails
// Validate never reaches storage.
package item

import (
	"fmt"
	"strings"
)

// Status reports whether an item was lost by its owner or found by someone.
type Status string

const (
	StatusLost  Status = "Lost"
	StatusFound Status = "Found"
)

// ParseStatus normalizes free-form input to a Status. Matching is
// case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lost":
		return StatusLost, nil
	case "found":
		return StatusFound, nil
	}
	return "", fmt.Errorf("item: invalid status %q (want Lost or Found)", s)
}

// Valid reports whether s is one of the two defined statuses.
func (s Status) Valid() bool {
	return s == StatusLost || s == StatusFound
}

// Opposite returns the counterpart status. Only meaningful for valid values.
func (s Status) Opposite() Status {
	if s == StatusLost {
		return StatusFound
	}
	return StatusLost
}

// Category classifies the kind of item reported.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryDocuments   Category = "Documents"
	CategoryAccessories Category = "Accessories"
	CategoryBags        Category = "Bags"
	CategoryKeys        Category = "Keys"
	CategoryOther       Category = "Other"
)

// Categories returns every defined category in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryDocuments,
		CategoryAccessories,
		CategoryBags,
		CategoryKeys,
		CategoryOther,
	}
}

// ParseCategory normalizes free-form input to a Category. Matching is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == needle {
			return c, nil
		}
	}
	return "", fmt.Errorf("item: unknown category %q", s)
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// NoMatch is the MatchedItemID sentinel for a record with no counterpart.
const NoMatch int32 = -1

// Item is a single lost or found report. IDs are assigned by the registry
// and never reused. PersonName and PersonContact are optional; every other
// text field is required.
type Item struct {
	ID            int32
	Name          string
	Category      Category
	Description   string
	Date          Date
	Location      string
	Status        Status
	Matched       bool
	Claimed       bool
	MatchedItemID int32
	PersonName    string
	PersonContact string
}

// New builds an unstored item from validated field values. The registry
// assigns the ID on Add; until then it is zero and MatchedItemID carries the
// NoMatch sentinel.
func New(name string, category Category, description string, date Date, location string, status Status) (*Item, error) {
	it := &Item{
		Name:          name,
		Category:      category,
		Description:   description,
		Date:          date,
		Location:      location,
		Status:        status,
		MatchedItemID: NoMatch,
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

// Validate checks every field invariant the registry relies on.
func (it *Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("item: name cannot be empty")
	}
	if !it.Category.Valid() {
		return fmt.Errorf("item: unknown category %q", it.Category)
	}
	if strings.TrimSpace(it.Description) == "" {
		return fmt.Errorf("item: description cannot be empty")
	}
	if it.Date.IsZero() {
		return fmt.Errorf("item: date is required")
	}
	if strings.TrimSpace(it.Location) == "" {
		return fmt.Errorf("item: location cannot be empty")
	}
	if !it.Status.Valid() {
		return fmt.Errorf("item: invalid status %q (want Lost or Found)", it.Status)
	}
	if it.Claimed && !it.Matched {
		return fmt.Errorf("item: claimed item must be matched")
	}
	return nil
}

// Field selects one of the searchable text fields of an item.
type Field int

const (
	FieldName Field = iota
	FieldCategory
	FieldDescription
	FieldLocation
)

// String returns the display name of the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldCategory:
		return "category"
	case FieldDescription:
		return "description"
	case FieldLocation:
		return "location"
	}
	return "unknown"
}

// Text returns the value of the selected field.
func (it *Item) Text(f Field) string {
	switch f {
	case FieldName:
		return it.Name
	case FieldCategory:
		return string(it.Category)
	case FieldDescription:
		return it.Description
	case FieldLocation:
		return it.Location
	}
	return ""
}

// FieldContains reports whether the selected field contains the query as a
// case-insensitive substring.
func (it *Item) FieldContains(f Field, query string) bool {
	return strings.Contains(
		strings.ToLower(it.Text(f)),
		strings.ToLower(query),
	)
}

// Overlaps reports whether any searchable field of the two items contains the
// other's value as a case-insensitive substring, in either direction. This is
// the similarity test the matching engine uses for candidate discovery.
func (it *Item) Overlaps(other *Item) bool {
	for _, f := range []Field{FieldName, FieldCategory, FieldDescription, FieldLocation} {
		a := strings.ToLower(it.Text(f))
		b := strings.ToLower(other.Text(f))
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	return false
}
