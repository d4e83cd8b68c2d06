package buffer

import (
	"strings"

	"github.com/saibendi/p4-editor/internal/engine/list"
)

const newline = '\n'

// Buffer is a character sequence with a single cursor.
type Buffer struct {
	data   *list.List[rune]
	cursor list.Position[rune]
	index  int
	row    int
	column int

	revisionID  RevisionID
	initContent string
}

// New creates a buffer. Without options the buffer is empty and the cursor
// is past the end at row 1, column 0.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		data:       list.New[rune](),
		row:        1,
		revisionID: NewRevisionID(),
	}
	b.cursor = b.data.End()

	for _, opt := range opts {
		opt(b)
	}

	if b.initContent != "" {
		b.InsertString(normalizeLineEndings(b.initContent))
		b.initContent = ""
	}

	return b
}

// Read Operations

// IsAtEnd reports whether the cursor is past the last character.
func (b *Buffer) IsAtEnd() bool {
	return b.cursor.IsEnd()
}

// DataAtCursor returns the character under the cursor.
// The cursor must not be past the end.
func (b *Buffer) DataAtCursor() rune {
	if b.IsAtEnd() {
		violate("DataAtCursor", "cursor is past the end")
	}
	return b.cursor.Value()
}

// Row returns the 1-based row of the cursor.
func (b *Buffer) Row() int {
	return b.row
}

// Column returns the 0-based column of the cursor within its row.
func (b *Buffer) Column() int {
	return b.column
}

// Index returns the number of characters before the cursor.
// It equals Len when the cursor is past the end.
func (b *Buffer) Index() int {
	if b.IsAtEnd() {
		return b.Len()
	}
	return b.index
}

// Point returns the cursor coordinates.
func (b *Buffer) Point() Point {
	return Point{Index: b.Index(), Row: b.row, Column: b.column}
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.data.Len()
}

// IsEmpty reports whether the buffer has no characters.
func (b *Buffer) IsEmpty() bool {
	return b.data.Empty()
}

// RevisionID returns the current content revision.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.data.Len())
	for r := range b.data.All() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// RowText returns the text of the cursor's row without its newline.
func (b *Buffer) RowText() string {
	start := b.cursor
	for i := 0; i < b.column; i++ {
		start = start.Prev()
	}

	var sb strings.Builder
	for p := start; !p.IsEnd(); p = p.Next() {
		r := p.Value()
		if r == newline {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Clone returns a deep copy of the buffer with the cursor at the same
// coordinates.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data:       b.data.Clone(),
		index:      b.index,
		row:        b.row,
		column:     b.column,
		revisionID: b.revisionID,
	}

	c.cursor = c.data.Begin()
	for i := 0; i < b.index; i++ {
		c.cursor = c.cursor.Next()
	}
	return c
}
