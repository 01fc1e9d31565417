// Package errors provides structured error types for murmur.
// These errors carry the operation that failed and a coarse category so the
// UI can decide whether to surface them or stay silent.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindAuth:
		return "authentication error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for murmur.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Directory errors
func UserNotFound(id string) error {
	return E(Op("state.User"), KindNotFound, fmt.Sprintf("user %s not found", id))
}

func ChatNotFound(id string) error {
	return E(Op("state.Chat"), KindNotFound, fmt.Sprintf("chat %s not found", id))
}

func DuplicateUser(id string) error {
	return E(Op("model.Validate"), KindInvalid, fmt.Sprintf("duplicate user id %s", id))
}

func NotAdmin(id string) error {
	return E(Op("state.OpenAdmin"), KindPermission, fmt.Sprintf("user %s is not an administrator", id))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Seed errors
func SeedLoadFailed(source string, err error) error {
	return E(Op("seed.Load"), KindConfig, fmt.Sprintf("failed to load fixture %s", source), err)
}

func SeedInvalid(source string, err error) error {
	return E(Op("seed.Validate"), KindInvalid, fmt.Sprintf("fixture %s is inconsistent", source), err)
}

// Auth errors
func CredentialsRejected(reason string) error {
	return E(Op("auth.Verify"), KindAuth, reason)
}

// Clipboard errors
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindIO, "system clipboard unavailable", err)
}
