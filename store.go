package measure

import (
	"fmt"
)

// The Store exclusively owns all measurement groups. Everything else holds
// GroupIds and re-resolves them per operation, so references can't go stale
// across async boundaries.
//
// Single-threaded by design (see the Editor); no locking.
type Store struct {
	groups    []*Group
	nextIndex int // monotonic; never decremented, even when groups dissolve
	nextSeq   int // feeds group id allocation
}

func NewStore() *Store {
	return &Store{ groups: []*Group{} }
}

func (s *Store)NumGroups() int { return len(s.groups) }

func (s *Store)Groups() []*Group { return s.groups }

// ByStatus returns the groups currently in the given state, in creation order.
func (s *Store)ByStatus(status GroupStatus) []*Group {
	out := []*Group{}
	for _,g := range s.groups {
		if g.Status == status { out = append(out, g) }
	}
	return out
}

func (s *Store)Lookup(id GroupId) *Group {
	for _,g := range s.groups {
		if g.Id == id { return g }
	}
	return nil
}

// StartGroup creates an empty pending group and returns its id.
func (s *Store)StartGroup() GroupId {
	g := &Group{
		Id: GroupId(fmt.Sprintf("grp-%06d", s.nextSeq)),
		GroupIndex: s.nextIndex,
		Positions: []Position{},
		Status: StatusPending,
	}
	s.nextSeq++
	s.nextIndex++
	s.groups = append(s.groups, g)
	return g.Id
}

func (s *Store)AppendPosition(id GroupId, pos Position) error {
	g := s.Lookup(id)
	if g == nil { return fmt.Errorf("append to %s: %w", id, ErrNotFound) }
	if !pos.IsValid() { return ErrInvalidInput }

	// No consecutive duplicates
	if n := len(g.Positions); n > 0 && g.Positions[n-1].Equal(pos) {
		return ErrInvalidInput
	}
	g.Positions = append(g.Positions, pos)
	return nil
}

// InsertPositionAfter inserts pos immediately after index (so it lands at
// index+1). Used when splitting a segment.
func (s *Store)InsertPositionAfter(id GroupId, index int, pos Position) error {
	g := s.Lookup(id)
	if g == nil { return fmt.Errorf("insert into %s: %w", id, ErrNotFound) }
	if !pos.IsValid() { return ErrInvalidInput }
	if index < 0 || index >= len(g.Positions) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(g.Positions), ErrIndexOutOfRange)
	}
	if g.Positions[index].Equal(pos) { return ErrInvalidInput }
	if index+1 < len(g.Positions) && g.Positions[index+1].Equal(pos) {
		return ErrInvalidInput
	}

	g.Positions = append(g.Positions, Position{})
	copy(g.Positions[index+2:], g.Positions[index+1:])
	g.Positions[index+1] = pos
	return nil
}

// RemoveOutcome describes what a removal did to the owning group.
// GroupDeleted is informational, not an error.
type RemoveOutcome struct {
	GroupDeleted bool
	Remaining    int
}

func (s *Store)RemovePositionAt(id GroupId, index int) (RemoveOutcome, error) {
	g := s.Lookup(id)
	if g == nil {
		return RemoveOutcome{}, fmt.Errorf("remove from %s: %w", id, ErrNotFound)
	}
	if index < 0 || index >= len(g.Positions) {
		return RemoveOutcome{},
			fmt.Errorf("remove at %d of %d: %w", index, len(g.Positions), ErrIndexOutOfRange)
	}

	g.Positions = append(g.Positions[:index], g.Positions[index+1:]...)

	if len(g.Positions) == 0 {
		s.deleteGroup(id)
		return RemoveOutcome{GroupDeleted: true}, nil
	}
	return RemoveOutcome{Remaining: len(g.Positions)}, nil
}

// DeleteGroup drops a group entirely (used by the lone-point dissolution
// policy, and by tool reset).
func (s *Store)DeleteGroup(id GroupId) error {
	if s.Lookup(id) == nil {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	s.deleteGroup(id)
	return nil
}

func (s *Store)deleteGroup(id GroupId) {
	out := s.groups[:0]
	for _,g := range s.groups {
		if g.Id != id { out = append(out, g) }
	}
	s.groups = out
}

func (s *Store)ReplacePositionAt(id GroupId, index int, pos Position) error {
	g := s.Lookup(id)
	if g == nil { return fmt.Errorf("replace in %s: %w", id, ErrNotFound) }
	if !pos.IsValid() { return ErrInvalidInput }
	if index < 0 || index >= len(g.Positions) {
		return fmt.Errorf("replace at %d of %d: %w", index, len(g.Positions), ErrIndexOutOfRange)
	}

	// No consecutive duplicates, same as append/insert
	if index > 0 && g.Positions[index-1].Equal(pos) { return ErrInvalidInput }
	if index < len(g.Positions)-1 && g.Positions[index+1].Equal(pos) {
		return ErrInvalidInput
	}

	g.Positions[index] = pos
	return nil
}

// FindGroupContaining resolves which group owns a clicked/dragged point, by
// exact equality. Linear scan; fine at interactive scales (tens of points).
func (s *Store)FindGroupContaining(pos Position) (GroupId, int, error) {
	for _,g := range s.groups {
		if i := g.IndexOf(pos); i >= 0 {
			return g.Id, i, nil
		}
	}
	return "", -1, ErrNotFound
}

// FindGroupNear is the tolerant variant, used for the near-duplicate click
// check.
func (s *Store)FindGroupNear(pos Position, thresholdM float64) (GroupId, int, error) {
	for _,g := range s.groups {
		for i,p := range g.Positions {
			if p.NearTo(pos, thresholdM) {
				return g.Id, i, nil
			}
		}
	}
	return "", -1, ErrNotFound
}

func (s *Store)MarkCompleted(id GroupId) error {
	g := s.Lookup(id)
	if g == nil { return fmt.Errorf("complete %s: %w", id, ErrNotFound) }
	if g.Status != StatusPending { return ErrNotPending }
	if len(g.Positions) < 2 { return ErrInsufficientPoints }
	g.Status = StatusCompleted
	return nil
}
