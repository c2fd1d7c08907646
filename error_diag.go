//go:build cryptocap_diag

package cryptocap

// Unwrap exposes the source to errors.Is and errors.As chains.
// Only compiled into builds tagged cryptocap_diag.
func (e *Error) Unwrap() error {
	return e.source
}
