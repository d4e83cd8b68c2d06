// Package buffer provides a cursor-addressable character buffer built on top
// of a doubly-linked list. It is the editing model behind the editor: every
// edit and navigation command goes through a Buffer.
//
// A Buffer keeps one cursor. The cursor is a list position plus three
// coordinates that are maintained eagerly rather than computed on demand:
//
//   - Index: number of characters before the cursor (0-based)
//   - Row: 1 plus the number of newlines before the cursor
//   - Column: number of non-newline characters between the cursor and the
//     nearest preceding newline (or the start of the buffer)
//
// The cursor either refers to a character (it sits "on" that character) or
// to the past-the-end position after the last character. A fresh buffer is
// empty with the cursor past the end at index 0, row 1, column 0.
//
// Single-step moves (Forward, Backward) and edits (Insert, Remove) update the
// coordinates from the one character crossed, except that stepping backward
// onto a newline rescans the previous row to find its length. Row-oriented
// moves (MoveToRowStart, MoveToRowEnd, MoveToColumn, Up, Down) scan linearly
// and cost O(row length).
//
// Basic usage:
//
//	b := buffer.New()
//	b.InsertString("hot\ndog")
//	b.Up()                 // row 1, column 3 (on the '\n')
//	b.MoveToRowStart()     // row 1, column 0
//	b.Remove()             // "ot\ndog"
//	text := b.String()
//
// Boundary outcomes, such as moving forward past the end or up from the
// first row, are reported through boolean results and leave the buffer
// unchanged. Contract violations, such as reading the character at the
// past-the-end position or asking for a negative column, panic with a
// *ContractError.
//
// Thread Safety:
//
// A Buffer is not safe for concurrent use. Callers that share a Buffer
// between goroutines must serialize access themselves.
package buffer
