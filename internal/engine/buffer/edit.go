package buffer

// Insert inserts r immediately before the cursor. The cursor keeps pointing
// at the same character (or past the end), so its coordinates advance past r.
func (b *Buffer) Insert(r rune) {
	b.data.Insert(b.cursor, r)
	if r == newline {
		b.row++
		b.column = 0
	} else {
		b.column++
	}
	b.index++
	b.revisionID = NewRevisionID()
}

// InsertString inserts each rune of s before the cursor, in order.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Remove deletes the character under the cursor and moves the cursor to the
// character that followed it, or past the end. It returns false and does
// nothing if the cursor is already past the end.
//
// Only the character at the cursor disappears; everything before the cursor
// is untouched, so Index, Row and Column keep their values. Removing a
// newline joins the next row onto the cursor's row.
func (b *Buffer) Remove() bool {
	if b.IsAtEnd() {
		return false
	}
	b.cursor = b.data.Erase(b.cursor)
	b.revisionID = NewRevisionID()
	return true
}

// Reset removes all content and returns the cursor to its initial state.
func (b *Buffer) Reset() {
	b.data.Clear()
	b.cursor = b.data.End()
	b.index = 0
	b.row = 1
	b.column = 0
	b.revisionID = NewRevisionID()
}
