package common

// OrderedSet keeps unique elements in the order they were first added.
type OrderedSet[T comparable] struct {
	elements map[T]struct{}
	order    []T
}

// NewOrderedSet creates a new set
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		elements: make(map[T]struct{}),
	}
}

// Add inserts an element into the set, reporting whether it was new
func (s *OrderedSet[T]) Add(value T) bool {
	if _, found := s.elements[value]; found {
		return false
	}
	s.elements[value] = struct{}{}
	s.order = append(s.order, value)
	return true
}

// Contains checks if an element is in the set
func (s *OrderedSet[T]) Contains(value T) bool {
	_, found := s.elements[value]
	return found
}

// Size returns the number of elements in the set
func (s *OrderedSet[T]) Size() int {
	return len(s.order)
}

// List returns all elements in first-seen order
func (s *OrderedSet[T]) List() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
