package workflow

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Ilia01/gjb/internal/ui"
)

// Kind classifies why a run stopped.
type Kind int

const (
	KindFetch Kind = iota + 1
	KindNoTickets
	KindMultipleTickets
	KindCheckout
	KindCreateBranch
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindNoTickets:
		return "no-tickets"
	case KindMultipleTickets:
		return "multiple-tickets"
	case KindCheckout:
		return "checkout"
	case KindCreateBranch:
		return "create-branch"
	default:
		return "unknown"
	}
}

// Rejected reports whether the kind is an expected policy outcome rather
// than a fault.
func (k Kind) Rejected() bool {
	return k == KindNoTickets || k == KindMultipleTickets
}

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitNoTickets       = 2
	ExitMultipleTickets = 3
)

// Error is an application error. Message is the text shown on the failed
// status line; Err is the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, cause error, hint string) error {
	var err error = &Error{Kind: kind, Message: message, Err: cause}
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

// Message returns the status line text for err.
func Message(err error) string {
	var werr *Error
	if errors.As(err, &werr) && werr.Message != "" {
		return werr.Message
	}
	return ui.FallbackFailure
}

// ExitCode maps err to the process exit status. Rejections get their own
// codes so scripts can tell them apart from faults.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var werr *Error
	if errors.As(err, &werr) {
		switch werr.Kind {
		case KindNoTickets:
			return ExitNoTickets
		case KindMultipleTickets:
			return ExitMultipleTickets
		}
	}
	return ExitFailure
}

// Details returns what is left to print after the status line: the cause of
// an application error, or the whole error otherwise, followed by any hints.
func Details(err error) string {
	if err == nil {
		return ""
	}
	var lines []string
	var werr *Error
	if errors.As(err, &werr) {
		if werr.Err != nil {
			lines = append(lines, werr.Err.Error())
		}
	} else {
		lines = append(lines, err.Error())
	}
	if hints := errors.FlattenHints(err); hints != "" {
		lines = append(lines, "Hint: "+hints)
	}
	return strings.Join(lines, "\n")
}
