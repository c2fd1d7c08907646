package cryptocap

// errorMessage is the only rendering an Error ever has.
const errorMessage = "cryptographic operation failed"

// ErrFailed matches every *Error with errors.Is.
var ErrFailed error = &Error{}

// Error is the opaque failure returned by signing, verification, encapsulation
// and decapsulation.
//
// An Error never says why an operation failed. Its message, its Go-syntax
// rendering and its errors.Is behaviour are identical whether the cause was a
// wrong key, a tampered message, a malformed encoding or an internal fault.
// Implementations may attach a source error for diagnostics; it is only
// reachable through [Error.Source] (and Unwrap in builds tagged
// cryptocap_diag).
type Error struct {
	source error
}

// NewError returns an Error without a source.
func NewError() *Error {
	return &Error{}
}

// ErrorFromSource returns an Error carrying source for diagnostics.
// The source does not change how the Error renders or compares.
func ErrorFromSource(source error) *Error {
	return &Error{source: source}
}

func (e *Error) Error() string {
	return errorMessage
}

// GoString keeps %#v from printing the source.
func (e *Error) GoString() string {
	return "cryptocap.Error{}"
}

// Is reports whether target is an *Error. All Errors are equal.
func (e *Error) Is(target error) bool {
	_, ok := target.(*Error)
	return ok
}

// Source returns the cause attached by the implementation, if any.
//
// Callers on a verification or decapsulation path must not branch on the
// result; it exists for logging and debugging.
func (e *Error) Source() error {
	if e == nil {
		return nil
	}
	return e.source
}
