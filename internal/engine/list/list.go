package list

import "iter"

// node is a single linked element. A node whose owner is nil has been
// removed from its list.
type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	owner *List[T]
	value T
}

// List is a doubly-linked, double-ended list.
// The zero value is an empty list ready to use.
type List[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice creates a list holding values in order.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.first == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Front returns a pointer to the first element.
// The list must not be empty.
func (l *List[T]) Front() *T {
	if l.Empty() {
		violate("Front", "list is empty")
	}
	return &l.first.value
}

// Back returns a pointer to the last element.
// The list must not be empty.
func (l *List[T]) Back() *T {
	if l.Empty() {
		violate("Back", "list is empty")
	}
	return &l.last.value
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{owner: l, value: v}
	if l.Empty() {
		l.first, l.last = n, n
	} else {
		n.next = l.first
		l.first.prev = n
		l.first = n
	}
	l.size++
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{owner: l, value: v}
	if l.Empty() {
		l.first, l.last = n, n
	} else {
		n.prev = l.last
		l.last.next = n
		l.last = n
	}
	l.size++
}

// PopFront removes the first element.
// The list must not be empty.
func (l *List[T]) PopFront() {
	if l.Empty() {
		violate("PopFront", "list is empty")
	}
	l.unlink(l.first)
}

// PopBack removes the last element.
// The list must not be empty.
func (l *List[T]) PopBack() {
	if l.Empty() {
		violate("PopBack", "list is empty")
	}
	l.unlink(l.last)
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for n := l.first; n != nil; {
		next := n.next
		n.next, n.prev, n.owner = nil, nil, nil
		n = next
	}
	l.first, l.last = nil, nil
	l.size = 0
}

// Begin returns the position of the first element, or End if the list is empty.
func (l *List[T]) Begin() Position[T] {
	return Position[T]{list: l, node: l.first}
}

// End returns the past-the-end position.
func (l *List[T]) End() Position[T] {
	return Position[T]{list: l}
}

// Insert inserts v before pos and returns the position of the new element.
// pos must belong to this list; it may be End.
func (l *List[T]) Insert(pos Position[T], v T) Position[T] {
	if pos.list != l {
		violate("Insert", "position does not belong to this list")
	}
	if pos.node != nil && pos.node.owner != l {
		violate("Insert", "position refers to an erased element")
	}

	switch pos.node {
	case l.first:
		l.PushFront(v)
		return l.Begin()
	case nil:
		l.PushBack(v)
		return Position[T]{list: l, node: l.last}
	}

	n := &node[T]{owner: l, value: v, prev: pos.node.prev, next: pos.node}
	pos.node.prev.next = n
	pos.node.prev = n
	l.size++
	return Position[T]{list: l, node: n}
}

// Erase removes the element at pos and returns the position of the element
// that followed it, or End. pos must be dereferenceable and belong to this list.
func (l *List[T]) Erase(pos Position[T]) Position[T] {
	if pos.list != l {
		violate("Erase", "position does not belong to this list")
	}
	if pos.node == nil {
		violate("Erase", "cannot erase the past-the-end position")
	}
	if pos.node.owner != l {
		violate("Erase", "position refers to an erased element")
	}

	next := pos.node.next
	l.unlink(pos.node)
	return Position[T]{list: l, node: next}
}

// unlink detaches n and clears its links so stale handles cannot reach
// live elements through it.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.last = n.prev
	}
	n.next, n.prev, n.owner = nil, nil, nil
	l.size--
}

// Clone returns a deep copy of the list with elements in the same order.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.copyAll(l)
	return c
}

// Assign replaces the contents of l with a copy of other.
// Assigning a list to itself does nothing.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.copyAll(other)
}

func (l *List[T]) copyAll(other *List[T]) {
	for n := other.first; n != nil; n = n.next {
		l.PushBack(n.value)
	}
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.last; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
