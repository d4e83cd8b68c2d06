package buffer

// Forward moves the cursor one character forward. It returns false and does
// nothing if the cursor is already past the end.
func (b *Buffer) Forward() bool {
	if b.IsAtEnd() {
		return false
	}
	if b.cursor.Value() == newline {
		b.row++
		b.column = 0
	} else {
		b.column++
	}
	b.cursor = b.cursor.Next()
	b.index++
	return true
}

// Backward moves the cursor one character backward. It returns false and
// does nothing if the cursor is on the first character (or the buffer is
// empty).
func (b *Buffer) Backward() bool {
	if b.cursor.Equal(b.data.Begin()) {
		return false
	}
	b.cursor = b.cursor.Prev()
	b.index--
	if b.cursor.Value() == newline {
		b.row--
		b.column = b.computeColumn()
	} else {
		b.column--
	}
	return true
}

// MoveToStart moves the cursor to the first character of the buffer.
func (b *Buffer) MoveToStart() {
	b.cursor = b.data.Begin()
	b.index = 0
	b.row = 1
	b.column = 0
}

// computeColumn counts the characters between the cursor and the previous
// newline or the start of the buffer.
func (b *Buffer) computeColumn() int {
	col := 0
	begin := b.data.Begin()
	for p := b.cursor; !p.Equal(begin); col++ {
		p = p.Prev()
		if p.Value() == newline {
			break
		}
	}
	return col
}

// MoveToRowStart moves the cursor to column 0 of its row.
func (b *Buffer) MoveToRowStart() {
	begin := b.data.Begin()
	for !b.cursor.Equal(begin) {
		prev := b.cursor.Prev()
		if prev.Value() == newline {
			break
		}
		b.cursor = prev
		b.index--
	}
	b.column = 0
}

// MoveToRowEnd moves the cursor to the newline that ends its row, or past
// the end if the row is the last one.
func (b *Buffer) MoveToRowEnd() {
	for !b.IsAtEnd() && b.cursor.Value() != newline {
		b.cursor = b.cursor.Next()
		b.index++
		b.column++
	}
}

// MoveToColumn moves the cursor to column n of its row, or to the end of the
// row if the row is shorter than n. n must not be negative.
//
// The cursor always goes to the row end first and then walks back while its
// column is greater than n. Up and Down rely on that path.
func (b *Buffer) MoveToColumn(n int) {
	if n < 0 {
		violate("MoveToColumn", "column must not be negative")
	}
	b.MoveToRowEnd()
	for b.column > n {
		b.Backward()
	}
}

// Up moves the cursor to the previous row, keeping its column if the previous
// row is long enough and otherwise landing on that row's newline. It returns
// false and does nothing on the first row.
func (b *Buffer) Up() bool {
	if b.row == 1 {
		return false
	}
	col := b.column
	b.MoveToRowStart()
	b.Backward()
	b.MoveToColumn(col)
	return true
}

// Down moves the cursor to the next row, keeping its column if the next row
// is long enough and otherwise landing at that row's end. It returns false
// and leaves the cursor where it was on the last row.
func (b *Buffer) Down() bool {
	col := b.column
	b.MoveToRowEnd()
	if b.IsAtEnd() {
		b.MoveToColumn(col)
		return false
	}
	b.Forward()
	b.MoveToColumn(col)
	return true
}
