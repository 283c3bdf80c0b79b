package registry

import "github.com/haleta-e/lost-and-found-manager/pkg/item"

// Search operations return the positions of matching records in store order.
// Positions stay valid until the next mutation; resolve them with At.

// SearchText returns the positions of records whose selected field contains
// the query as a case-insensitive substring.
func (r *Registry) SearchText(f item.Field, query string) []int {
	return r.scan(func(it *item.Item) bool {
		return it.FieldContains(f, query)
	})
}

// SearchDate returns the positions of records reported on exactly d.
func (r *Registry) SearchDate(d item.Date) []int {
	return r.scan(func(it *item.Item) bool {
		return it.Date == d
	})
}

// SearchStatus returns the positions of unmatched records with the given
// status. Matched records are deliberately excluded: once linked to a
// counterpart they no longer count as open lost or found reports.
func (r *Registry) SearchStatus(s item.Status) []int {
	return r.scan(func(it *item.Item) bool {
		return !it.Matched && it.Status == s
	})
}

// FilterMatched returns the positions of records whose matched flag equals
// the argument.
func (r *Registry) FilterMatched(matched bool) []int {
	return r.scan(func(it *item.Item) bool {
		return it.Matched == matched
	})
}

// FilterClaimed returns the positions of records whose claimed flag equals
// the argument.
func (r *Registry) FilterClaimed(claimed bool) []int {
	return r.scan(func(it *item.Item) bool {
		return it.Claimed == claimed
	})
}

func (r *Registry) scan(pred func(*item.Item) bool) []int {
	var out []int
	for i := range r.items {
		if pred(&r.items[i]) {
			out = append(out, i)
		}
	}
	return out
}
