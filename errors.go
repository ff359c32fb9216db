package beryl

import (
	"fmt"

	"github.com/pkg/errors"
)

// The closed set of failure kinds. Every error returned by this package
// matches exactly one of these under errors.Is, except native failures,
// which are reported as a *NativeError.
var (
	// ErrAlreadyInitialized is returned by Init while another token is alive.
	ErrAlreadyInitialized = errors.New("beryl: SDL is already initialized")

	// ErrWrongThread is returned by Init on platforms that require the
	// process main thread when no main-thread dispatcher is running.
	ErrWrongThread = errors.New("beryl: SDL must be initialized on the main thread")

	// ErrContractViolation is returned when an input exceeds a documented
	// limit. The native library is never called in that case.
	ErrContractViolation = errors.New("beryl: contract violation")

	// ErrUnrepresented is returned by the event translator for a record
	// whose sub-discriminator it does not model. Callers may skip it.
	ErrUnrepresented = errors.New("beryl: event not represented")
)

// NativeError is a failure reported by SDL itself. Msg is a snapshot of the
// native error string, taken synchronously with the failing call on the
// init-owning thread; it does not change if SDL errors again later.
type NativeError struct {
	// Op names the native call that failed, e.g. "SDL_CreateWindow".
	Op string
	// Msg is the captured native error text.
	Msg string
}

func (e *NativeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("beryl: %s failed", e.Op)
	}
	return fmt.Sprintf("beryl: %s: %s", e.Op, e.Msg)
}

// nativeErr snapshots err (whose text go-sdl2 already copied out of the
// native error slot) into a *NativeError for the given operation.
func nativeErr(op string, err error) error {
	if err == nil {
		return &NativeError{Op: op}
	}
	return &NativeError{Op: op, Msg: err.Error()}
}

// violation builds an ErrContractViolation with detail text.
func violation(format string, args ...interface{}) error {
	return errors.Wrapf(ErrContractViolation, format, args...)
}

// errUnrepresentedf builds an ErrUnrepresented naming the offending record.
func errUnrepresentedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnrepresented, format, args...)
}
