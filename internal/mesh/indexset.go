package mesh

import "fmt"

// IndexSet is a set of vertex indices backed by a bitmap sized to the
// vertex count, so membership tests in the relaxation loop stay O(1).
type IndexSet struct {
	member []bool
	count  int
}

// NewIndexSet returns an empty set able to hold indices in [0, n).
func NewIndexSet(n int) IndexSet {
	return IndexSet{member: make([]bool, n)}
}

// IndexSetOf builds a set over n vertices containing indices.
// Any index outside [0, n) is rejected.
func IndexSetOf(n int, indices ...int) (IndexSet, error) {
	s := NewIndexSet(n)
	for _, i := range indices {
		if err := s.Add(i); err != nil {
			return IndexSet{}, err
		}
	}
	return s, nil
}

// Add inserts i into the set.
func (s *IndexSet) Add(i int) error {
	if i < 0 || i >= len(s.member) {
		return fmt.Errorf("index %d (size %d): %w", i, len(s.member), ErrVertexOutOfRange)
	}
	if !s.member[i] {
		s.member[i] = true
		s.count++
	}
	return nil
}

// Has reports whether i is in the set. Out-of-range indices are never members.
func (s IndexSet) Has(i int) bool {
	return i >= 0 && i < len(s.member) && s.member[i]
}

// Len returns the number of members.
func (s IndexSet) Len() int {
	return s.count
}

// Capacity returns the vertex count the set was sized for.
func (s IndexSet) Capacity() int {
	return len(s.member)
}

// Indices returns the members in ascending order.
func (s IndexSet) Indices() []int {
	out := make([]int, 0, s.count)
	for i, ok := range s.member {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s IndexSet) Equal(other IndexSet) bool {
	if s.count != other.count {
		return false
	}
	for i, ok := range s.member {
		if ok && !other.Has(i) {
			return false
		}
	}
	return true
}
