package picker

import "fmt"

// DecodeFailure is the only error kind the picker surfaces. It wraps whatever
// the loader reported.
type DecodeFailure struct {
	Cause error
}

func (e *DecodeFailure) Error() string {
	if e.Cause == nil {
		return "decode failed"
	}
	return fmt.Sprintf("decode failed: %v", e.Cause)
}

func (e *DecodeFailure) Unwrap() error {
	return e.Cause
}
