package automaton

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// StateSet is an ordered set of points.
type StateSet struct {
	set *treeset.Set
}

// NewStateSet creates a state set containing points.
func NewStateSet(points ...int) *StateSet {
	S := &StateSet{set: treeset.NewWithIntComparator()}
	S.Add(points...)
	return S
}

// Add adds points to S.
func (S *StateSet) Add(points ...int) {
	for _, p := range points {
		S.set.Add(p)
	}
}

// Contains is true if S contains point p.
func (S *StateSet) Contains(p int) bool {
	return S.set.Contains(p)
}

// Union adds all points of other to S and returns S.
func (S *StateSet) Union(other *StateSet) *StateSet {
	if other != nil {
		S.set.Add(other.set.Values()...)
	}
	return S
}

// Points returns the points of S in ascending order.
func (S *StateSet) Points() []int {
	values := S.set.Values()
	points := make([]int, len(values))
	for i, v := range values {
		points[i] = v.(int)
	}
	return points
}

// Size returns the number of points in S.
func (S *StateSet) Size() int {
	return S.set.Size()
}

// Empty is true for a set without points.
func (S *StateSet) Empty() bool {
	return S.set.Empty()
}

// Copy returns a copy of S.
func (S *StateSet) Copy() *StateSet {
	C := NewStateSet()
	C.set.Add(S.set.Values()...)
	return C
}

// Equals is true if S and other contain the same points.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	it := S.set.Iterator()
	for it.Next() {
		if !other.set.Contains(it.Value()) {
			return false
		}
	}
	return true
}

func (S *StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range S.Points() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('}')
	return b.String()
}
