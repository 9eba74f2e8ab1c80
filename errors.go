package slhdsa

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrorKind classifies the fatal error conditions a signing or key-handling
// operation can raise. Verification never raises: an invalid signature is
// reported by a false return, not an error.
type ErrorKind int

const (
	// InvalidParameters is raised on a parameter-set lookup miss, or when
	// Chain's precondition i+s <= w-1 is violated.
	InvalidParameters ErrorKind = iota
	// InvalidLength is raised when a signing key, public key or signature
	// does not match the length the parameter set demands, or when a
	// context string exceeds 255 bytes.
	InvalidLength
	// WeakKey is raised when SK.seed, SK.prf, PK.seed or PK.root is all-zero.
	WeakKey
	// RootMismatch is raised when a public key recomputed from a signing
	// key disagrees with the stored root during import.
	RootMismatch
	// UnsupportedHash is raised by pre-hash signing/verification with an
	// unlisted hash function.
	UnsupportedHash
	// RngFailure wraps an error returned by the random source.
	RngFailure
	// Truncation is raised when an MGF1 mask length exceeds 2^32 * hLen.
	Truncation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidParameters:
		return "InvalidParameters"
	case InvalidLength:
		return "InvalidLength"
	case WeakKey:
		return "WeakKey"
	case RootMismatch:
		return "RootMismatch"
	case UnsupportedHash:
		return "UnsupportedHash"
	case RngFailure:
		return "RngFailure"
	case Truncation:
		return "Truncation"
	default:
		return "Unknown"
	}
}

// Error is the interface satisfied by every error this package returns.
type Error interface {
	error

	// Kind reports which of the seven fatal error conditions occurred.
	Kind() ErrorKind

	// Inner returns the wrapped cause, or nil if there is none.
	Inner() error
}

type errorImpl struct {
	kind  ErrorKind
	msg   string
	inner error
}

func (e *errorImpl) Error() string {
	if e.inner != nil {
		return fmt.Sprintf("slhdsa: %s: %s: %s", e.kind, e.msg, e.inner)
	}
	return fmt.Sprintf("slhdsa: %s: %s", e.kind, e.msg)
}

func (e *errorImpl) Kind() ErrorKind { return e.kind }
func (e *errorImpl) Inner() error    { return e.inner }

func errorf(kind ErrorKind, format string, a ...interface{}) Error {
	return &errorImpl{kind: kind, msg: fmt.Sprintf(format, a...)}
}

func wrapErrorf(kind ErrorKind, inner error, format string, a ...interface{}) Error {
	return &errorImpl{kind: kind, msg: fmt.Sprintf(format, a...), inner: inner}
}

// validateNonZero checks that none of the named n-byte values is all-zero,
// aggregating every violation it finds rather than stopping at the first.
func validateNonZero(fields map[string][]byte) Error {
	var merr *multierror.Error
	for name, val := range fields {
		zero := true
		for _, b := range val {
			if b != 0 {
				zero = false
				break
			}
		}
		if zero {
			merr = multierror.Append(merr, fmt.Errorf("%s is all-zero", name))
		}
	}
	if merr == nil || len(merr.Errors) == 0 {
		return nil
	}
	return wrapErrorf(WeakKey, merr.ErrorOrNil(), "weak key material")
}
