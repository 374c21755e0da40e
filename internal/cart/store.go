package cart

import (
	"context"

	"github.com/google/uuid"
)

// Store owns the ordered cart line items for one session. Every mutation writes
// the whole snapshot through to the SnapshotStore before the in-memory state is
// replaced, so a mutation either fully succeeds and persists or leaves the cart
// untouched.
type Store struct {
	items     []LineItem
	snapshots SnapshotStore
	key       string
}

// NewStore loads the persisted snapshot under key. A missing or corrupt snapshot
// initializes an empty cart; load never fails to the caller.
func NewStore(c context.Context, key string, snapshots SnapshotStore) *Store {
	items := []LineItem{}
	value, ok, err := snapshots.Get(c, key)
	if err == nil && ok {
		items = decodeSnapshot(value)
	}
	return &Store{items: items, snapshots: snapshots, key: key}
}

// AddItem merges the candidate into an existing line per SameLine, or appends it
// with a fresh line id. The candidate quantity is clamped into
// [MinQuantity, MaxQuantity] before the merge scan; the merged sum itself is
// not clamped and may accumulate past MaxQuantity.
func (s *Store) AddItem(c context.Context, candidate LineItem) error {
	candidate.Quantity = clampQuantity(candidate.Quantity)

	next := make([]LineItem, len(s.items))
	copy(next, s.items)

	merged := false
	for i, existing := range next {
		if SameLine(existing, candidate) {
			next[i].Quantity += candidate.Quantity
			merged = true
			break
		}
	}
	if !merged {
		candidate.ID = uuid.New()
		next = append(next, candidate)
	}

	return s.persist(c, next)
}

// UpdateQuantity replaces the quantity of the line with the given id. A quantity
// below MinQuantity is a silent no-op, as is an unknown line id.
func (s *Store) UpdateQuantity(c context.Context, lineID uuid.UUID, quantity int32) error {
	if quantity < MinQuantity {
		return nil
	}

	next := make([]LineItem, len(s.items))
	copy(next, s.items)
	changed := false
	for i, item := range next {
		if item.ID == lineID {
			next[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	return s.persist(c, next)
}

// RemoveItem drops the line with the given id; unknown ids are a no-op.
func (s *Store) RemoveItem(c context.Context, lineID uuid.UUID) error {
	next := make([]LineItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != lineID {
			next = append(next, item)
		}
	}
	if len(next) == len(s.items) {
		return nil
	}

	return s.persist(c, next)
}

// Clear empties the cart and persists the empty snapshot. Idempotent.
func (s *Store) Clear(c context.Context) error {
	return s.persist(c, []LineItem{})
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the sum of quantities across all lines, recomputed on every call.
func (s *Store) ItemCount() int32 {
	var count int32
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) persist(c context.Context, next []LineItem) error {
	value, err := encodeSnapshot(next)
	if err != nil {
		return err
	}
	if err := s.snapshots.Set(c, s.key, value); err != nil {
		return err
	}
	s.items = next
	return nil
}
