package lua

import (
	"strconv"

	lua "github.com/yuin/gopher-lua"

	"github.com/saibendi/p4-editor/internal/engine"
)

// newBufTable builds the "buf" table. Mutations go through eng.Do so that
// they are logged like every other front end's commands.
func newBufTable(L *lua.LState, eng *engine.Engine) *lua.LTable {
	b := eng.Buffer()

	do := func(L *lua.LState, cmd engine.Command) bool {
		res, err := eng.Do(cmd)
		if err != nil {
			L.RaiseError("%v", err)
		}
		return res.OK
	}
	boolCmd := func(op engine.Op) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LBool(do(L, engine.Command{Op: op})))
			return 1
		}
	}
	voidCmd := func(op engine.Op) lua.LGFunction {
		return func(L *lua.LState) int {
			do(L, engine.Command{Op: op})
			return 0
		}
	}
	intQuery := func(get func() int) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LNumber(get()))
			return 1
		}
	}

	funcs := map[string]lua.LGFunction{
		"forward":   boolCmd(engine.OpForward),
		"backward":  boolCmd(engine.OpBackward),
		"remove":    boolCmd(engine.OpRemove),
		"up":        boolCmd(engine.OpUp),
		"down":      boolCmd(engine.OpDown),
		"row_start": voidCmd(engine.OpRowStart),
		"row_end":   voidCmd(engine.OpRowEnd),
		"reset":     voidCmd(engine.OpReset),

		"insert": func(L *lua.LState) int {
			text := L.CheckString(1)
			if text != "" {
				do(L, engine.Command{Op: engine.OpInsert, Arg: text})
			}
			return 0
		},
		"column": func(L *lua.LState) int {
			n := L.CheckInt(1)
			if n < 0 {
				L.ArgError(1, "column must not be negative")
			}
			do(L, engine.Command{Op: engine.OpColumn, Arg: strconv.Itoa(n)})
			return 0
		},
		"exec": func(L *lua.LState) int {
			res, err := eng.Exec(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LBool(res.OK))
			return 1
		},

		"row":   intQuery(b.Row),
		"col":   intQuery(b.Column),
		"index": intQuery(b.Index),
		"size":  intQuery(b.Len),
		"text": func(L *lua.LState) int {
			L.Push(lua.LString(b.String()))
			return 1
		},
		"at_end": func(L *lua.LState) int {
			L.Push(lua.LBool(b.IsAtEnd()))
			return 1
		},
		"char": func(L *lua.LState) int {
			if b.IsAtEnd() {
				L.RaiseError("no character at the end of the buffer")
			}
			L.Push(lua.LString(string(b.DataAtCursor())))
			return 1
		},
	}

	return L.SetFuncs(L.NewTable(), funcs)
}
