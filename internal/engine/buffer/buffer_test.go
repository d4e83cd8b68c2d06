package buffer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants recomputes the cursor coordinates from scratch and
// compares them with the ones the buffer maintains.
func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()

	text := []rune(b.String())
	require.Equal(t, len(text), b.Len(), "Len")
	require.GreaterOrEqual(t, b.index, 0)
	require.LessOrEqual(t, b.index, len(text))
	require.Equal(t, b.index == len(text), b.IsAtEnd(), "at end iff index == Len")
	require.Equal(t, b.index, b.Index())

	if !b.IsAtEnd() {
		require.Equal(t, text[b.index], b.DataAtCursor(), "cursor character")
	}

	before := text[:b.index]
	row := 1 + strings.Count(string(before), "\n")
	col := len(before)
	if i := lastNewline(before); i >= 0 {
		col = len(before) - i - 1
	}
	require.Equal(t, row, b.Row(), "row")
	require.Equal(t, col, b.Column(), "column")
}

func lastNewline(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == '\n' {
			return i
		}
	}
	return -1
}

// newAt builds a buffer holding text with the cursor at index.
func newAt(t *testing.T, text string, index int) *Buffer {
	t.Helper()
	b := New(WithContent(text))
	for b.Index() > index {
		require.True(t, b.Backward())
	}
	checkInvariants(t, b)
	return b
}

func TestNewBuffer(t *testing.T) {
	b := New()

	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsAtEnd())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Index())
	assert.Equal(t, 1, b.Row())
	assert.Equal(t, 0, b.Column())
	assert.Equal(t, "", b.String())
	checkInvariants(t, b)
}

func TestEmptyBufferBoundaries(t *testing.T) {
	b := New()

	assert.False(t, b.Forward())
	assert.False(t, b.Backward())
	assert.False(t, b.Remove())
	assert.False(t, b.Up())
	assert.False(t, b.Down())

	b.MoveToRowStart()
	b.MoveToRowEnd()
	b.MoveToColumn(3)

	assert.Equal(t, Point{Index: 0, Row: 1, Column: 0}, b.Point())
	checkInvariants(t, b)
}

func TestNewBufferWithContent(t *testing.T) {
	b := New(WithContent("one\r\ntwo\rthree"))

	assert.Equal(t, "one\ntwo\nthree", b.String())
	assert.True(t, b.IsAtEnd())
	assert.Equal(t, 3, b.Row())
	assert.Equal(t, 5, b.Column())
	checkInvariants(t, b)
}

func TestScenarioInsertThenBackward(t *testing.T) {
	b := New()
	for _, r := range []rune{'K', 'I', 'T', 'H', '\n', 'S', 'A', 'I', '\n'} {
		b.Insert(r)
	}

	assert.Equal(t, 3, b.Row())

	b.Backward()
	assert.Equal(t, '\n', b.DataAtCursor())

	b.Backward()
	assert.Equal(t, 'I', b.DataAtCursor())
	assert.Equal(t, 2, b.Row())
	assert.Equal(t, 2, b.Column())
	assert.Equal(t, 7, b.Index())
	checkInvariants(t, b)
}

func TestScenarioForwardAtEnd(t *testing.T) {
	b := New()
	for _, r := range []rune{'H', 'O', 'T', '\n', 'D', 'O', 'G', '\n'} {
		b.Insert(r)
	}

	assert.Equal(t, 3, b.Row())
	assert.False(t, b.Forward())

	b.Backward()
	b.Backward()
	b.Backward()
	b.Forward()
	assert.Equal(t, 'G', b.DataAtCursor())
	checkInvariants(t, b)
}

func TestForward(t *testing.T) {
	b := newAt(t, "ab\nc", 0)

	steps := []Point{
		{Index: 1, Row: 1, Column: 1},
		{Index: 2, Row: 1, Column: 2},
		{Index: 3, Row: 2, Column: 0},
		{Index: 4, Row: 2, Column: 1},
	}
	for _, want := range steps {
		require.True(t, b.Forward())
		assert.Equal(t, want, b.Point())
		checkInvariants(t, b)
	}

	assert.False(t, b.Forward())
	assert.Equal(t, steps[len(steps)-1], b.Point())
}

func TestBackwardRecomputesColumn(t *testing.T) {
	b := newAt(t, "hello\n\nx", 7)
	assert.Equal(t, Point{Index: 7, Row: 3, Column: 0}, b.Point())

	require.True(t, b.Backward())
	assert.Equal(t, Point{Index: 6, Row: 2, Column: 0}, b.Point())

	require.True(t, b.Backward())
	assert.Equal(t, Point{Index: 5, Row: 1, Column: 5}, b.Point())
	checkInvariants(t, b)
}

func TestBackwardAtBeginIsNoop(t *testing.T) {
	b := newAt(t, "abc", 0)

	assert.False(t, b.Backward())
	assert.Equal(t, Point{Index: 0, Row: 1, Column: 0}, b.Point())
	assert.Equal(t, 'a', b.DataAtCursor())
}

func TestInsertKeepsCursorTarget(t *testing.T) {
	b := newAt(t, "ac", 1)

	b.Insert('b')
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 'c', b.DataAtCursor())
	assert.Equal(t, Point{Index: 2, Row: 1, Column: 2}, b.Point())

	b.Insert('\n')
	assert.Equal(t, "ab\nc", b.String())
	assert.Equal(t, 'c', b.DataAtCursor())
	assert.Equal(t, Point{Index: 3, Row: 2, Column: 0}, b.Point())
	checkInvariants(t, b)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		at       int
		expected string
		point    Point
		atEnd    bool
		next     rune
	}{
		{"first char", "abc", 0, "bc", Point{0, 1, 0}, false, 'b'},
		{"middle char", "abc", 1, "ac", Point{1, 1, 1}, false, 'c'},
		{"last char", "abc", 2, "ab", Point{2, 1, 2}, true, 0},
		{"newline joins rows", "ab\ncd", 2, "abcd", Point{2, 1, 2}, false, 'c'},
		{"char on second row", "ab\ncd", 3, "ab\nd", Point{3, 2, 0}, false, 'd'},
		{"only newline", "\n", 0, "", Point{0, 1, 0}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, tt.text, tt.at)

			require.True(t, b.Remove())
			assert.Equal(t, tt.expected, b.String())
			assert.Equal(t, tt.point, b.Point())
			assert.Equal(t, tt.atEnd, b.IsAtEnd())
			if !tt.atEnd {
				assert.Equal(t, tt.next, b.DataAtCursor())
			}
			checkInvariants(t, b)
		})
	}
}

func TestRemoveAtEndIsNoop(t *testing.T) {
	b := New(WithContent("ab\nc"))
	before := b.Point()

	assert.False(t, b.Remove())
	assert.Equal(t, before, b.Point())
	assert.Equal(t, "ab\nc", b.String())
}

func TestInsertRemoveCancellation(t *testing.T) {
	texts := []string{"", "abc", "ab\ncd\n", "\n\n"}
	chars := []rune{'x', '\n'}

	for _, text := range texts {
		for at := 0; at <= len(text); at++ {
			for _, c := range chars {
				b := newAt(t, text, at)
				before := b.Point()
				size := b.Len()

				b.Insert(c)
				require.True(t, b.Backward())
				require.Equal(t, c, b.DataAtCursor())
				require.True(t, b.Remove())

				assert.Equal(t, size, b.Len())
				assert.Equal(t, before, b.Point(), "text %q at %d insert %q", text, at, c)
				assert.Equal(t, text, b.String())
				checkInvariants(t, b)
			}
		}
	}
}

func TestMoveToRowStart(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want Point
	}{
		{"first row middle", "abc\ndef", 2, Point{0, 1, 0}},
		{"first row already at start", "abc\ndef", 0, Point{0, 1, 0}},
		{"on newline", "abc\ndef", 3, Point{0, 1, 0}},
		{"second row end", "abc\ndef", 7, Point{4, 2, 0}},
		{"empty row", "abc\n\ndef", 4, Point{4, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, tt.text, tt.at)
			row := b.Row()

			b.MoveToRowStart()

			assert.Equal(t, 0, b.Column())
			assert.Equal(t, row, b.Row())
			assert.Equal(t, tt.want, b.Point())
			checkInvariants(t, b)
		})
	}
}

func TestMoveToRowEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want Point
	}{
		{"first row", "abc\ndef", 1, Point{3, 1, 3}},
		{"already on newline", "abc\ndef", 3, Point{3, 1, 3}},
		{"last row", "abc\ndef", 4, Point{7, 2, 3}},
		{"empty row", "abc\n\ndef", 4, Point{4, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, tt.text, tt.at)

			b.MoveToRowEnd()

			assert.True(t, b.IsAtEnd() || b.DataAtCursor() == '\n')
			assert.Equal(t, tt.want, b.Point())
			checkInvariants(t, b)
		})
	}
}

func TestMoveToColumn(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		at     int
		column int
		want   Point
	}{
		{"backward within row", "abcdef", 5, 2, Point{2, 1, 2}},
		{"same column", "abcdef", 3, 3, Point{3, 1, 3}},
		{"past row end clamps to end", "abcdef", 1, 10, Point{6, 1, 6}},
		{"past row end clamps to newline", "abc\ndef", 1, 10, Point{3, 1, 3}},
		{"zero", "abc\ndef", 6, 0, Point{4, 2, 0}},
		{"empty row", "abc\n\ndef", 4, 2, Point{4, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, tt.text, tt.at)

			b.MoveToColumn(tt.column)

			assert.Equal(t, tt.want, b.Point())
			checkInvariants(t, b)
		})
	}
}

// MoveToColumn resets to the row end and only walks backward from there, so
// a target to the right of the cursor is reached by overshooting to the end
// and coming back rather than by stepping forward.
func TestMoveToColumnGoesThroughRowEnd(t *testing.T) {
	b := newAt(t, "abcdef\nxy", 1)

	b.MoveToColumn(4)
	assert.Equal(t, Point{Index: 4, Row: 1, Column: 4}, b.Point())
	assert.Equal(t, 'e', b.DataAtCursor())

	// The target is measured from the true row start, not from where the
	// cursor started.
	b.MoveToColumn(5)
	assert.Equal(t, Point{Index: 5, Row: 1, Column: 5}, b.Point())
}

func TestMoveToColumnNegativePanics(t *testing.T) {
	b := New(WithContent("abc"))

	err := recoverContract(t, func() { b.MoveToColumn(-1) })
	assert.Equal(t, "MoveToColumn", err.Op)
}

func TestDataAtCursorAtEndPanics(t *testing.T) {
	b := New(WithContent("abc"))

	err := recoverContract(t, func() { b.DataAtCursor() })
	assert.Equal(t, "DataAtCursor", err.Op)
}

func recoverContract(t *testing.T, fn func()) (err *ContractError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(*ContractError)
		require.True(t, ok, "expected *ContractError, got %T", r)
	}()
	fn()
	return nil
}

func TestUp(t *testing.T) {
	text := "ab\ncdef\ngh"

	tests := []struct {
		name string
		at   int
		ok   bool
		want Point
	}{
		{"first row is noop", 1, false, Point{1, 1, 1}},
		{"keeps column", 4, true, Point{1, 1, 1}},
		{"clamps to newline", 7, true, Point{2, 1, 2}},
		{"from end of last row", 10, true, Point{5, 2, 2}},
		{"from row start", 8, true, Point{3, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, text, tt.at)

			assert.Equal(t, tt.ok, b.Up())
			assert.Equal(t, tt.want, b.Point())
			checkInvariants(t, b)
		})
	}
}

func TestDown(t *testing.T) {
	text := "ab\ncdef\ngh"

	tests := []struct {
		name string
		at   int
		ok   bool
		want Point
	}{
		{"keeps column", 1, true, Point{4, 2, 1}},
		{"from newline", 2, true, Point{5, 2, 2}},
		{"clamps to end of last row", 6, true, Point{10, 3, 2}},
		{"last row is noop", 9, false, Point{9, 3, 1}},
		{"last row end is noop", 10, false, Point{10, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAt(t, text, tt.at)

			assert.Equal(t, tt.ok, b.Down())
			assert.Equal(t, tt.want, b.Point())
			checkInvariants(t, b)
		})
	}
}

func TestDownIntoTrailingEmptyRow(t *testing.T) {
	b := newAt(t, "abc\n", 2)

	require.True(t, b.Down())
	assert.True(t, b.IsAtEnd())
	assert.Equal(t, Point{Index: 4, Row: 2, Column: 0}, b.Point())

	require.True(t, b.Up())
	assert.Equal(t, Point{Index: 0, Row: 1, Column: 0}, b.Point())
}

func TestRoundTrip(t *testing.T) {
	text := "one\ntwo\n\nthree"

	for start := 0; start <= len(text); start++ {
		b := newAt(t, text, start)
		before := b.Point()
		beforeEnd := b.IsAtEnd()

		n := 0
		for b.Forward() {
			n++
		}
		for i := 0; i < n; i++ {
			require.True(t, b.Backward())
		}

		assert.Equal(t, before, b.Point(), "start %d", start)
		assert.Equal(t, beforeEnd, b.IsAtEnd())
		if !beforeEnd {
			assert.Equal(t, rune(text[start]), b.DataAtCursor())
		}
	}
}

func TestRowText(t *testing.T) {
	b := newAt(t, "ab\ncdef\ngh", 5)
	assert.Equal(t, "cdef", b.RowText())

	b.MoveToRowEnd()
	assert.Equal(t, "cdef", b.RowText())

	b = New(WithContent("ab\n"))
	assert.Equal(t, "", b.RowText())
}

func TestClone(t *testing.T) {
	b := newAt(t, "ab\ncd", 4)

	c := b.Clone()
	assert.Equal(t, b.Point(), c.Point())
	assert.Equal(t, 'd', c.DataAtCursor())

	c.Insert('x')
	c.Up()
	assert.Equal(t, "ab\ncd", b.String())
	assert.Equal(t, "ab\ncxd", c.String())
	assert.Equal(t, Point{Index: 4, Row: 2, Column: 1}, b.Point())
	checkInvariants(t, b)
	checkInvariants(t, c)
}

func TestMoveToStart(t *testing.T) {
	b := New(WithContent("ab\ncd"))
	rev := b.RevisionID()

	b.MoveToStart()
	assert.Equal(t, Point{Index: 0, Row: 1, Column: 0}, b.Point())
	assert.Equal(t, 'a', b.DataAtCursor())
	assert.Equal(t, rev, b.RevisionID())
	checkInvariants(t, b)

	empty := New()
	empty.MoveToStart()
	assert.True(t, empty.IsAtEnd())
	checkInvariants(t, empty)
}

func TestPointCompare(t *testing.T) {
	b := New(WithContent("ab\ncd"))
	end := b.Point()
	b.Up()
	mid := b.Point()

	assert.Equal(t, -1, mid.Compare(end))
	assert.Equal(t, 1, end.Compare(mid))
	assert.Equal(t, 0, mid.Compare(b.Point()))
}

func TestReset(t *testing.T) {
	b := newAt(t, "ab\ncd", 3)
	rev := b.RevisionID()

	b.Reset()

	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsAtEnd())
	assert.Equal(t, Point{Index: 0, Row: 1, Column: 0}, b.Point())
	assert.NotEqual(t, rev, b.RevisionID())
	checkInvariants(t, b)
}

func TestRevisionChangesOnlyOnEdits(t *testing.T) {
	b := New(WithContent("ab\ncd"))
	rev := b.RevisionID()

	b.Backward()
	b.Up()
	b.MoveToRowStart()
	assert.Equal(t, rev, b.RevisionID())

	b.Insert('x')
	assert.NotEqual(t, rev, b.RevisionID())
}

func TestSnapshot(t *testing.T) {
	b := newAt(t, "ab\ncd", 4)

	snap := b.Snapshot()
	b.Insert('z')

	assert.Equal(t, "ab\ncd", snap.Text())
	assert.Equal(t, Point{Index: 4, Row: 2, Column: 1}, snap.Point())
	assert.False(t, snap.AtEnd())
	assert.Equal(t, 2, snap.RowCount())
	assert.Equal(t, "ab", snap.RowText(1))
	assert.Equal(t, "cd", snap.RowText(2))
	assert.Equal(t, "", snap.RowText(3))
	assert.NotEqual(t, snap.RevisionID(), b.RevisionID())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(280))
	alphabet := []rune{'a', 'b', '\n'}

	for round := 0; round < 50; round++ {
		b := New()
		for step := 0; step < 200; step++ {
			applyOp(b, rng.Intn(10), alphabet[rng.Intn(len(alphabet))], rng.Intn(6))
			checkInvariants(t, b)
		}
	}
}

func FuzzBufferOperations(f *testing.F) {
	f.Add([]byte("KITH\nSAI\n"))
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte("\n\n\x07\x08\x05a\x02"))

	f.Fuzz(func(t *testing.T, ops []byte) {
		b := New()
		for i, op := range ops {
			applyOp(b, int(op)%10, rune(ops[(i+1)%len(ops)]), int(op)%6)
			checkInvariants(t, b)
		}
	})
}

func applyOp(b *Buffer, op int, r rune, col int) {
	switch op {
	case 0, 1:
		b.Insert(r)
	case 2:
		b.Forward()
	case 3:
		b.Backward()
	case 4:
		b.Remove()
	case 5:
		b.MoveToRowStart()
	case 6:
		b.MoveToRowEnd()
	case 7:
		b.MoveToColumn(col)
	case 8:
		b.Up()
	case 9:
		b.Down()
	}
}
