package async

import "fmt"

// PanicError carries a value recovered from a panicking async function.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("async: function panicked: %v", e.Value)
}
