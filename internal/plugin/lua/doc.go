// Package lua runs Lua scripts against an editor engine.
//
// This package wraps the gopher-lua library to provide:
//   - Sandboxed Lua state management
//   - A "buf" global that drives an engine.Engine
//   - Execution timeouts through context cancellation
//   - Capturing of print output
//
// # State
//
//	state := lua.NewState(lua.WithExecutionTimeout(2 * time.Second))
//	defer state.Close()
//
//	state.Bind(eng)
//	if err := state.DoFile(ctx, "script.lua"); err != nil {
//	    return err
//	}
//
// # The buf table
//
// Movement and editing:
//
//	buf.insert(text)     buf.remove() -> bool
//	buf.forward() -> bool    buf.backward() -> bool
//	buf.up() -> bool         buf.down() -> bool
//	buf.row_start()          buf.row_end()
//	buf.column(n)            buf.reset()
//	buf.exec(line) -> bool   runs a textual engine command
//
// Queries:
//
//	buf.row()  buf.col()  buf.index()  buf.size()
//	buf.text() buf.at_end()  buf.char()
//
// buf.char() at the end of the buffer and buf.column() with a negative
// argument raise Lua errors.
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened, and dofile,
// loadfile, load and loadstring are removed.
package lua
