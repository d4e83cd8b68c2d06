package buffer

import "strings"

// Snapshot is a read-only copy of a buffer's content and cursor taken at one
// revision. It does not change when the buffer is edited afterwards.
type Snapshot struct {
	text       string
	lines      []string
	point      Point
	atEnd      bool
	revisionID RevisionID
}

// Snapshot captures the current content and cursor.
func (b *Buffer) Snapshot() *Snapshot {
	text := b.String()
	return &Snapshot{
		text:       text,
		lines:      strings.Split(text, "\n"),
		point:      b.Point(),
		atEnd:      b.IsAtEnd(),
		revisionID: b.revisionID,
	}
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// Point returns the cursor coordinates at the time of the snapshot.
func (s *Snapshot) Point() Point {
	return s.point
}

// AtEnd reports whether the cursor was past the end.
func (s *Snapshot) AtEnd() bool {
	return s.atEnd
}

// RevisionID returns the content revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// RowCount returns the number of rows. An empty buffer has one row.
func (s *Snapshot) RowCount() int {
	return len(s.lines)
}

// RowText returns the text of a 1-based row without its newline.
// Out-of-range rows return "".
func (s *Snapshot) RowText(row int) string {
	if row < 1 || row > len(s.lines) {
		return ""
	}
	return s.lines[row-1]
}
