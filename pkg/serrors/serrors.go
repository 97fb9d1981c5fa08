package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is implemented by all semantic error kinds created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a semantic error kind. Kinds are comparable sentinels and
// match through the Error wrapper with errors.Is/As.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds produced by the analysis pipeline and its boundaries.
var (
	// ErrUnreadableDocument means no text could be extracted from the uploaded résumé.
	ErrUnreadableDocument = NewKind("UNREADABLE_DOCUMENT")
	// ErrMissingJobDescription means the job description was empty or blank.
	ErrMissingJobDescription = NewKind("MISSING_JOB_DESCRIPTION")
	// ErrBadRequest means the request itself was malformed (missing file, bad form).
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrTooLarge means the upload exceeded the configured size limit.
	ErrTooLarge = NewKind("TOO_LARGE")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is(err, target) matches either the kind or anything in the cause
// chain; errors.As behaves the same way.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or ErrInternal
// when err carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus maps err to the status code a transport should answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrBadRequest, ErrMissingJobDescription:
		return http.StatusBadRequest
	case ErrUnreadableDocument:
		return http.StatusUnprocessableEntity
	case ErrTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns a message suitable for showing to an end user. Internal
// failures are reported generically.
func UserMessage(err error) string {
	switch KindOf(err) {
	case ErrUnreadableDocument:
		return "Could not read any text from the uploaded résumé. Please upload a text-based PDF, DOCX, HTML or plain-text file."
	case ErrMissingJobDescription:
		return "Please paste a job description."
	case ErrTooLarge:
		return "The uploaded file is too large."
	case ErrBadRequest:
		var se *Error
		if errors.As(err, &se) && se.Message() != "" {
			return se.Message()
		}

		return "The request could not be understood."
	default:
		return "Something went wrong while analyzing the résumé."
	}
}
