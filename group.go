package measure

import (
	"fmt"
)

type GroupId string

type GroupStatus int
const(
	StatusPending GroupStatus = iota
	StatusCompleted
)

func (gs GroupStatus)String() string {
	switch gs {
	case StatusPending:   return "pending"
	case StatusCompleted: return "completed"
	}
	return fmt.Sprintf("status(%d)", int(gs))
}

// A Group is one measurement: an ordered chain of positions. While pending,
// the position slice doubles as the tool's working cache; once completed it is
// only touched through the store's edit operations.
//
// Invariants: no two consecutive positions are equal; a completed group has at
// least two positions (a group edited down to one point is dissolved).
type Group struct {
	Id         GroupId
	GroupIndex int         // stable creation-order index; assigned once, never reused
	Positions  []Position
	Status     GroupStatus
}

func (g *Group)String() string {
	return fmt.Sprintf("group %s [#%d, %s, %d points]",
		g.Id, g.GroupIndex, g.Status, len(g.Positions))
}

func (g *Group)NumPoints() int { return len(g.Positions) }
func (g *Group)NumSegments() int {
	if len(g.Positions) < 2 { return 0 }
	return len(g.Positions) - 1
}

// IndexOf resolves a position back to its index via exact equality.
func (g *Group)IndexOf(pos Position) int {
	for i,p := range g.Positions {
		if p.Equal(pos) { return i }
	}
	return -1
}

// Neighbours returns the points either side of index i, or nil at the ends.
func (g *Group)Neighbours(i int) (prev, next *Position) {
	if i > 0                  { prev = &g.Positions[i-1] }
	if i < len(g.Positions)-1 { next = &g.Positions[i+1] }
	return
}

func (g *Group)Distances() ([]float64, float64) {
	dists,total,err := CumulativeDistances(g.Positions)
	if err != nil { return []float64{}, 0 }
	return dists, total
}
