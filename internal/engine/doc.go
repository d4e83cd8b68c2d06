// Package engine is the facade the editor front ends talk to.
//
// An Engine owns one cursor buffer (see package buffer) and exposes its
// operations as named commands, so the terminal harness, the Lua bridge and
// the command line all drive the buffer the same way.
//
// # Commands
//
// A Command is an operation name plus an optional argument:
//
//	forward, backward, remove, up, down   boolean result
//	row_start, row_end                    always succeed
//	column N                              move to column N (N >= 0)
//	insert TEXT                           insert TEXT before the cursor
//	reset                                 clear the buffer
//	start                                 move to the first character
//
// Boundary outcomes (moving past an edge) are reported in Result.OK, not as
// errors. Errors are returned only for unknown commands and malformed
// arguments.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("hot\ndog"))
//	res, err := e.Exec("up")        // res.OK == true
//	_, err = e.Exec("column 1")
//	_, err = e.Exec("insert X")     // "hXot\ndog"
//	text := e.Text()
//
// # State Export
//
// StateJSON renders the buffer text and cursor coordinates as a JSON object,
// which the command line prints in --json mode.
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. Front ends drive it from a
// single goroutine.
package engine
