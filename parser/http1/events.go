package http1

import "fmt"

// Signal is returned by event handlers in order to tell the parser whether it should
// go on or abort.
type Signal uint8

const (
	// Continue lets the parser proceed.
	Continue Signal = iota
	// Stop aborts parsing immediately. This is not an error, therefore OnError won't be
	// called and Parse returns ErrStopped.
	Stop
)

// Warning is a code of an advisory notice. Warnings never affect the parsing outcome.
type Warning uint8

const (
	// WarnHeaderWithoutColon is reported when a header line is terminated before a colon
	// is met. Such line is ignored.
	WarnHeaderWithoutColon Warning = iota + 1
	// WarnControlChar is reported when a header value or a reason phrase contains a
	// control character other than horizontal tab.
	WarnControlChar
	// WarnTruncated is reported when the input ends inside a header value or a reason
	// phrase, so the emitted token may be incomplete.
	WarnTruncated
)

func (w Warning) String() string {
	switch w {
	case WarnHeaderWithoutColon:
		return "header without colon"
	case WarnControlChar:
		return "control character"
	case WarnTruncated:
		return "truncated input"
	default:
		return fmt.Sprintf("Warning(%d)", uint8(w))
	}
}

// Events is a set of handlers the parser reports tokens to. All the byte slices passed
// into handlers are views into the parsed buffer, so they must not be retained after
// the buffer is reused. Capacity of every view is capped by its length, so appending to
// it never overwrites the buffer.
//
// Exactly one of OnRequestLine and OnResponseLine must be set, which selects the parsing
// mode. Other handlers are optional.
type Events struct {
	// OnRequestLine receives the method, path and query (empty if absent) of the request
	// line along with the protocol version digits.
	OnRequestLine func(method, path, query []byte, major, minor int) Signal
	// OnResponseLine receives the status code, the reason phrase (possibly empty) and the
	// protocol version digits.
	OnResponseLine func(code uint, reason []byte, major, minor int) Signal
	// OnHeader is called for every header. The name is lower-cased. A continuation line
	// is reported with the name of the header it continues and continuation set.
	OnHeader func(name, value []byte, continuation bool) Signal
	// OnBody is called exactly once when the header block is over. The body spans the
	// rest of the buffer and may be empty.
	OnBody func(body []byte) Signal
	// OnError is called at most once, when the input is malformed or the parser is
	// misused.
	OnError func(err *Error)
	// OnWarning is called for every non-fatal oddity.
	OnWarning func(code Warning, message string)
}

func (e *Events) warnf(code Warning, format string, args ...any) {
	if e.OnWarning != nil {
		e.OnWarning(code, fmt.Sprintf(format, args...))
	}
}
