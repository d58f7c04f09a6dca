package logo

import (
	"errors"
	"fmt"
)

// Kind classifies why a composition failed.
type Kind int

const (
	// KindInvalid means the options were rejected before any work was done.
	KindInvalid Kind = iota
	// KindInputNotFound means the input file could not be opened.
	KindInputNotFound
	// KindDecode means the input was read but is not a decodable image.
	KindDecode
	// KindWrite means the PNG could not be encoded or written.
	KindWrite
)

var (
	// ErrInvalidOptions matches errors of KindInvalid.
	ErrInvalidOptions = errors.New("logo: invalid options")

	// ErrInputNotFound matches errors of KindInputNotFound.
	ErrInputNotFound = errors.New("logo: input not found")

	// ErrDecode matches errors of KindDecode.
	ErrDecode = errors.New("logo: decode failure")

	// ErrWrite matches errors of KindWrite.
	ErrWrite = errors.New("logo: write failure")
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid options"
	case KindInputNotFound:
		return "input not found"
	case KindDecode:
		return "decode failure"
	case KindWrite:
		return "write failure"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalid:
		return ErrInvalidOptions
	case KindInputNotFound:
		return ErrInputNotFound
	case KindDecode:
		return ErrDecode
	case KindWrite:
		return ErrWrite
	default:
		return nil
	}
}

// Error is returned by Composer.Compose for every failure it classifies.
type Error struct {
	Kind Kind
	Path string // Input or output path involved, empty for KindInvalid
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
