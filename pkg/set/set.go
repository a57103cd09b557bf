package set

import "sort"

// Set is a set of player indices. The zero value is not usable, call New.
type Set struct {
	m map[int]struct{}
}

func New(vals ...int) *Set {
	s := &Set{m: make(map[int]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (s *Set) Contains(val int) bool {
	_, ok := s.m[val]
	return ok
}

// Add reports whether val was newly inserted.
func (s *Set) Add(val int) bool {
	if _, ok := s.m[val]; ok {
		return false
	}
	s.m[val] = struct{}{}
	return true
}

func (s *Set) Len() int {
	return len(s.m)
}

// Sorted returns the members in increasing order.
func (s *Set) Sorted() []int {
	vals := make([]int, 0, len(s.m))
	for v := range s.m {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}
