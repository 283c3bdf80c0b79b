package registry

import "github.com/haleta-e/lost-and-found-manager/pkg/item"

// FindMatches returns the positions of candidate counterparts for the record
// with the given id: every other record that is unmatched, carries the
// opposite status, and overlaps the target on at least one text field in
// either substring direction.
func (r *Registry) FindMatches(id int32) ([]int, error) {
	target := r.indexOf(id)
	if target < 0 {
		return nil, ErrNotFound
	}

	want := r.items[target].Status.Opposite()
	var out []int
	for i := range r.items {
		if i == target || r.items[i].Matched || r.items[i].Status != want {
			continue
		}
		if r.items[i].Overlaps(&r.items[target]) {
			out = append(out, i)
		}
	}
	return out, nil
}

// ConfirmMatch links the two records as a lost/found pair: both become
// matched and each carries the other's id. Both records are re-validated
// here, not just at candidate time, so a stale candidate position can never
// commit a bad pair.
func (r *Registry) ConfirmMatch(a, b int32) error {
	if a == b {
		return ErrSelfMatch
	}
	ia := r.indexOf(a)
	ib := r.indexOf(b)
	if ia < 0 || ib < 0 {
		return ErrNotFound
	}
	if r.items[ia].Status == r.items[ib].Status {
		return ErrSameStatus
	}
	if r.items[ia].Matched || r.items[ib].Matched {
		return ErrAlreadyMatched
	}

	r.items[ia].Matched = true
	r.items[ib].Matched = true
	r.items[ia].MatchedItemID = b
	r.items[ib].MatchedItemID = a
	return r.Save()
}

// MarkClaimed resolves a matched record: the item was returned to its owner.
// The claim propagates to the matched counterpart when it still exists; a
// counterpart deleted after matching leaves a dangling link, which is
// tolerated.
func (r *Registry) MarkClaimed(id int32) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	if !r.items[i].Matched {
		return ErrNotMatched
	}
	if r.items[i].Claimed {
		return ErrAlreadyClaimed
	}

	r.items[i].Claimed = true
	if j := r.indexOf(r.items[i].MatchedItemID); j >= 0 {
		r.items[j].Claimed = true
	}
	return r.Save()
}

// Counterpart resolves the matched partner of the record with the given id.
// The second return is false when the record is unmatched or the partner was
// deleted.
func (r *Registry) Counterpart(id int32) (item.Item, bool) {
	i := r.indexOf(id)
	if i < 0 || !r.items[i].Matched {
		return item.Item{}, false
	}
	j := r.indexOf(r.items[i].MatchedItemID)
	if j < 0 {
		return item.Item{}, false
	}
	return r.items[j], true
}
