// Package list provides a generic doubly-linked, double-ended list with
// bidirectional position handles.
//
// The list owns every node it links. A Position is a non-owning handle that
// refers either to one element of a list or to that list's past-the-end
// sentinel. Positions are cheap value types and may be copied freely.
//
// Key properties:
//   - O(1) push and pop at both ends
//   - O(1) insert before and erase at a Position
//   - Len is tracked incrementally, never computed by traversal
//   - Erasing an element invalidates only positions that referenced it
//
// Position equality:
//
// Two positions are equal when they refer to the same element of the same
// list, or are both the list's End. The zero Position is uninitialized: it is
// equal only to another zero Position and unequal to every position obtained
// from a list, including End. Comparing positions taken from different lists
// is not meaningful.
//
// Contract violations, such as dereferencing End or erasing a position that
// belongs to another list, panic with a *ContractError. They are programming
// errors and are not meant to be recovered.
//
// Basic usage:
//
//	l := list.New[rune]()
//	l.PushBack('a')
//	l.PushBack('c')
//	pos := l.Insert(l.End().Prev(), 'b') // "abc", pos at 'b'
//	pos = l.Erase(pos)                   // "ac", pos at 'c'
//
// The list is not safe for concurrent use.
package list
