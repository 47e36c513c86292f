package sketch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a handle does not resolve to a live object.
	ErrNotFound = errors.New("sketch: not found")
	// ErrStale is returned when resolving a reference taken before the table
	// it points into was rebuilt.
	ErrStale = errors.New("sketch: stale reference")
)

// ContractViolation is the value panicked with when a caller breaks an API
// contract, such as asking a line segment for its position or solving a
// banded system larger than [MaxUnknowns]. It is never recovered inside this
// package.
type ContractViolation struct {
	Op  string
	Msg string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("sketch: %s: %s", c.Op, c.Msg)
}

func violate(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}
