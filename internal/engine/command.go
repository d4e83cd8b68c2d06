package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saibendi/p4-editor/internal/engine/buffer"
)

// Op names a buffer operation.
type Op string

// Operations understood by Engine.Do.
const (
	OpForward  Op = "forward"
	OpBackward Op = "backward"
	OpRemove   Op = "remove"
	OpInsert   Op = "insert"
	OpRowStart Op = "row_start"
	OpRowEnd   Op = "row_end"
	OpColumn   Op = "column"
	OpUp       Op = "up"
	OpDown     Op = "down"
	OpReset    Op = "reset"
	OpStart    Op = "start"
)

var knownOps = map[Op]bool{
	OpForward:  true,
	OpBackward: true,
	OpRemove:   true,
	OpInsert:   true,
	OpRowStart: true,
	OpRowEnd:   true,
	OpColumn:   true,
	OpUp:       true,
	OpDown:     true,
	OpReset:    true,
	OpStart:    true,
}

// Command is a single operation request.
type Command struct {
	Op  Op
	Arg string
}

// String returns the textual form accepted by ParseCommand.
func (c Command) String() string {
	if c.Arg == "" {
		return string(c.Op)
	}
	return string(c.Op) + " " + c.Arg
}

// Result reports the outcome of a command.
type Result struct {
	// OK is false when the command hit a boundary and changed nothing.
	OK    bool
	Point buffer.Point
}

// ParseCommand parses "name [arg]". Everything after the first space is the
// argument, verbatim, so "insert  a b" inserts " a b". The escapes \n, \t
// and \\ are expanded in insert arguments.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	name, arg, _ := strings.Cut(line, " ")
	op := Op(strings.ToLower(strings.TrimSpace(name)))

	if !knownOps[op] {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if op == OpInsert {
		arg = unescape(arg)
	} else {
		arg = strings.TrimSpace(arg)
	}

	cmd := Command{Op: op, Arg: arg}
	if err := cmd.validate(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// validate checks the argument so that contract violations in the buffer
// surface as errors at this boundary.
func (c Command) validate() error {
	switch c.Op {
	case OpInsert:
		if c.Arg == "" {
			return fmt.Errorf("%w: insert needs text", ErrInvalidArgument)
		}
	case OpColumn:
		n, err := strconv.Atoi(c.Arg)
		if err != nil {
			return fmt.Errorf("%w: column %q: %v", ErrInvalidArgument, c.Arg, err)
		}
		if n < 0 {
			return fmt.Errorf("%w: column must not be negative", ErrInvalidArgument)
		}
	default:
		if !knownOps[c.Op] {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Op)
		}
		if c.Arg != "" {
			return fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, c.Op)
		}
	}
	return nil
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
