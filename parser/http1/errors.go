package http1

import (
	"errors"
	"fmt"
)

// Kind categorizes parsing errors.
type Kind uint8

const (
	// KindWrongArguments means the parser was misused: both or neither start line
	// handlers are set, or the input is empty
	KindWrongArguments Kind = iota + 1
	// KindBrokenRequestLine means the request line is too short, truncated or carries
	// a malformed protocol
	KindBrokenRequestLine
	// KindBrokenResponseLine means the response line has a malformed protocol or status code
	KindBrokenResponseLine
	// KindBrokenLineDivider means CR is not followed by LF
	KindBrokenLineDivider
	// KindBrokenHeader means an illegal byte in a header name, a name truncated before
	// its colon, or a continuation line before any header
	KindBrokenHeader
)

func (k Kind) String() string {
	switch k {
	case KindWrongArguments:
		return "wrong arguments"
	case KindBrokenRequestLine:
		return "broken request line"
	case KindBrokenResponseLine:
		return "broken response line"
	case KindBrokenLineDivider:
		return "broken line divider"
	case KindBrokenHeader:
		return "broken header"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error describes why the parsing has failed. Offset is the position in the buffer
// the parser was at when the failure was detected.
type Error struct {
	Message string
	Offset  int
	Kind    Kind
}

func newError(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind. This allows matching against
// the Err* values via errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrWrongArguments matches every error of KindWrongArguments
	ErrWrongArguments = &Error{Kind: KindWrongArguments, Message: "wrong arguments"}
	// ErrBrokenRequestLine matches every error of KindBrokenRequestLine
	ErrBrokenRequestLine = &Error{Kind: KindBrokenRequestLine, Message: "broken request line"}
	// ErrBrokenResponseLine matches every error of KindBrokenResponseLine
	ErrBrokenResponseLine = &Error{Kind: KindBrokenResponseLine, Message: "broken response line"}
	// ErrBrokenLineDivider matches every error of KindBrokenLineDivider
	ErrBrokenLineDivider = &Error{Kind: KindBrokenLineDivider, Message: "broken line divider"}
	// ErrBrokenHeader matches every error of KindBrokenHeader
	ErrBrokenHeader = &Error{Kind: KindBrokenHeader, Message: "broken header"}

	// ErrStopped is returned when an event handler has returned Stop.
	ErrStopped = errors.New("parsing stopped by an event handler")
)
