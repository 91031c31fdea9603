// internal/regbus/errors.go
package regbus

import "fmt"

// BusError wraps any transport failure.
// It is the only error kind produced by this package.
type BusError struct {
	Op       string // "select", "read", "write"
	Register byte
	Err      error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("regbus: %s reg=%d: %v", e.Op, e.Register, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }
