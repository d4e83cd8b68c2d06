package buffer

import (
	"fmt"
	"sync/atomic"
)

// Point is a snapshot of the cursor coordinates.
// Index and Column are 0-based; Row is 1-based.
type Point struct {
	Index  int
	Row    int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("%d:%d@%d", p.Row, p.Column, p.Index)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Points taken from the same buffer order by Index.
func (p Point) Compare(other Point) int {
	switch {
	case p.Index < other.Index:
		return -1
	case p.Index > other.Index:
		return 1
	}
	return 0
}

// RevisionID identifies a content revision of a buffer.
// Each edit creates a new revision; cursor movement does not.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
