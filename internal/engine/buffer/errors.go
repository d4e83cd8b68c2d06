package buffer

import "fmt"

// ContractError describes a violated precondition. It is raised with panic
// and indicates a bug in the caller.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("buffer: %s: %s", e.Op, e.Msg)
}

func violate(op, msg string) {
	panic(&ContractError{Op: op, Msg: msg})
}
