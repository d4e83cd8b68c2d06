package list

// Position is a non-owning handle to an element of a List, or to the list's
// past-the-end sentinel. The zero value is an uninitialized position that
// belongs to no list.
type Position[T any] struct {
	list *List[T]
	node *node[T]
}

// Valid reports whether the position was obtained from a list.
func (p Position[T]) Valid() bool {
	return p.list != nil
}

// IsEnd reports whether p is the past-the-end position of its list.
func (p Position[T]) IsEnd() bool {
	return p.list != nil && p.node == nil
}

// Equal reports whether p and other refer to the same location.
func (p Position[T]) Equal(other Position[T]) bool {
	return p.list == other.list && p.node == other.node
}

// Value returns the element at p. p must be dereferenceable.
func (p Position[T]) Value() T {
	return *p.Ref()
}

// Ref returns a pointer to the element at p. p must be dereferenceable.
func (p Position[T]) Ref() *T {
	p.check("Ref")
	if p.node == nil {
		violate("Ref", "cannot dereference the past-the-end position")
	}
	return &p.node.value
}

// Next returns the position after p. p must not be End.
func (p Position[T]) Next() Position[T] {
	p.check("Next")
	if p.node == nil {
		violate("Next", "cannot advance past the end")
	}
	return Position[T]{list: p.list, node: p.node.next}
}

// Prev returns the position before p. p must not be Begin.
// The previous position of End is the last element.
func (p Position[T]) Prev() Position[T] {
	p.check("Prev")
	if p.node == nil {
		if p.list.last == nil {
			violate("Prev", "cannot move before the beginning")
		}
		return Position[T]{list: p.list, node: p.list.last}
	}
	if p.node.prev == nil {
		violate("Prev", "cannot move before the beginning")
	}
	return Position[T]{list: p.list, node: p.node.prev}
}

func (p Position[T]) check(op string) {
	if p.list == nil {
		violate(op, "position is uninitialized")
	}
	if p.node != nil && p.node.owner != p.list {
		violate(op, "position refers to an erased element")
	}
}
