// Package http1 implements a single-pass zero-copy parser of HTTP/1.x message heads.
//
// Parse consumes one complete in-memory buffer holding either a request or a response.
// It reports the start line, every header and the body through Events and returns the
// offset of the body. The parser keeps no state between calls and never allocates,
// except for the error value on failure.
package http1

import (
	"bytes"

	"github.com/indigo-web/httpfast/internal/httpchars"
	"github.com/scott-ainsworth/go-ascii"
)

const (
	// the shortest possible request line is `GET / HTTP/1.0`
	minRequestLineLength = 14
	// and the shortest possible response line is `HTTP/1.0 200 OK`
	minResponseLineLength = 15
	// `HTTP/x.y`
	protoLength = 8
)

var protoPrefix = []byte("HTTP/")

// Parse parses the start line and the header block of data. On success, the offset of
// the first body byte is returned. The byte slice passed to OnBody is exactly data[body:].
//
// In case of malformed input or misuse, OnError is called once and its argument is
// returned alongside with -1. In case an event handler returns Stop, -1 and ErrStopped
// are returned, and OnError is not called.
//
// Header names are lower-cased in place. Only upper-case bytes of names are written,
// so a buffer whose names are already lower case may be read-only (e.g. obtained from
// a string). Repeated calls over the same buffer yield the same results.
func Parse(data []byte, events *Events) (body int, err error) {
	if events == nil {
		events = new(Events)
	}

	if events.OnRequestLine != nil && events.OnResponseLine != nil {
		return fail(events, newError(KindWrongArguments, 0,
			"only one of handlers must be defined: OnRequestLine or OnResponseLine",
		))
	}

	var state parserState

	switch {
	case events.OnRequestLine != nil:
		state = eRequestLine
	case events.OnResponseLine != nil:
		state = eResponseLine
	default:
		return fail(events, newError(KindWrongArguments, 0,
			"one of handlers must be defined: OnRequestLine or OnResponseLine",
		))
	}

	if len(data) == 0 {
		return fail(events, newError(KindWrongArguments, 0, "empty input"))
	}

	var (
		// begin of the current token, its length and the begin of the value it carries
		tb, tl, vb int
		// request line tokens preceding the query
		methodBegin, methodLen, pathBegin, pathLen int
		// name of the last header, reused by continuation lines
		nameBegin, nameLen int
		continuation       bool
		headers            int
		// set when the current value contains a control character
		tainted      bool
		major, minor int
		code         uint
	)

	for p := 0; p < len(data); p++ {
		c := data[p]

		// the same byte is processed once more, if some state hands it over to another one
		for redo := true; redo; {
			redo = false

			switch state {
			case eRequestLine:
				if len(data)-p < minRequestLineLength {
					return fail(events, newError(KindBrokenRequestLine, p, "request line is too short"))
				}

				tb = p
				state = eMethod
				redo = true
			case eMethod:
				if !httpchars.IsSpace(c) {
					break
				}

				methodBegin, methodLen = tb, p-tb
				tb = p + 1
				state = ePath
			case ePath:
				switch {
				case c == '?':
					pathBegin, pathLen = tb, p-tb
					tb = p + 1
					state = eQuery
				case httpchars.IsSpace(c):
					pathBegin, pathLen = tb, p-tb
					tb, tl = p, 0
					state = eProto
				}
			case eQuery:
				if !httpchars.IsSpace(c) {
					break
				}

				tl = p - tb
				state = eProto
			case eProto:
				if len(data)-p < protoLength {
					return fail(events, newError(KindBrokenRequestLine, p, "request line is too short"))
				}

				if !bytes.HasPrefix(data[p:], protoPrefix) || data[p+6] != '.' {
					return fail(events, newError(KindBrokenRequestLine, p,
						"broken protocol section in request line",
					))
				}

				if !ascii.IsDigit(data[p+5]) || !ascii.IsDigit(data[p+7]) {
					return fail(events, newError(KindBrokenRequestLine, p,
						"wrong protocol version in request line",
					))
				}

				signal := events.OnRequestLine(
					span(data, methodBegin, methodBegin+methodLen),
					span(data, pathBegin, pathBegin+pathLen),
					span(data, tb, tb+tl),
					int(data[p+5]-'0'),
					int(data[p+7]-'0'),
				)
				if signal == Stop {
					return -1, ErrStopped
				}

				p += protoLength - 1
				state = eCR

			case eResponseLine:
				if len(data)-p < minResponseLineLength {
					return fail(events, newError(KindBrokenResponseLine, p, "response line is too short"))
				}

				if !bytes.HasPrefix(data[p:], protoPrefix) || data[p+6] != '.' {
					return fail(events, newError(KindBrokenResponseLine, p,
						"protocol section is not valid in response line",
					))
				}

				if !ascii.IsDigit(data[p+5]) || !ascii.IsDigit(data[p+7]) {
					return fail(events, newError(KindBrokenResponseLine, p,
						"wrong http version number: %q in response line", data[p+5:p+8],
					))
				}

				if !httpchars.IsSpace(data[p+protoLength]) {
					return fail(events, newError(KindBrokenResponseLine, p,
						"broken protocol section in response line: %q", data[p:p+protoLength+1],
					))
				}

				major, minor = int(data[p+5]-'0'), int(data[p+7]-'0')
				// stop right at the separator, so the status state skips it among others
				p += protoLength - 1
				state = eStatusSP
			case eStatusSP:
				if httpchars.IsSpace(c) {
					break
				}

				code = 0
				state = eStatus
				redo = true
			case eStatus:
				if httpchars.IsSpace(c) {
					state = eReasonSP
					break
				}

				if !ascii.IsDigit(c) {
					return fail(events, newError(KindBrokenResponseLine, p,
						"non-digit symbol in code in response line: %02X", c,
					))
				}

				code = code*10 + uint(c-'0')
			case eReasonSP:
				if httpchars.IsSpace(c) {
					break
				}

				tb = p
				tainted = false
				state = eReason
				redo = true
			case eReason:
				if c != '\r' && c != '\n' {
					tainted = tainted || httpchars.IsControl(c)
					break
				}

				if tainted {
					events.warnf(WarnControlChar, "control character in reason phrase")
				}

				if events.OnResponseLine(code, span(data, tb, p), major, minor) == Stop {
					return -1, ErrStopped
				}

				state = eCR
				redo = true

			case eCR:
				if c == '\n' {
					state = eHeaderNext
					break
				}

				if c != '\r' {
					return fail(events, newError(KindBrokenLineDivider, p,
						"expected CR or LF, received: %02x", c,
					))
				}

				state = eLF
			case eLF:
				if c != '\n' {
					return fail(events, newError(KindBrokenLineDivider, p,
						"expected LF, received: %02x", c,
					))
				}

				state = eHeaderNext

			case eHeaderNext:
				switch {
				case httpchars.IsSpace(c):
					if headers == 0 {
						return fail(events, newError(KindBrokenHeader, p,
							"continuation for header at the first header",
						))
					}

					continuation = true
					state = eHeaderColonSP
				case c == '\n':
					return finish(events, data, p+1)
				case c == '\r':
					if p+1 == len(data) {
						return finish(events, data, len(data))
					}

					if data[p+1] != '\n' {
						return fail(events, newError(KindBrokenLineDivider, p+1,
							"unexpected sequence: CR, %02X", data[p+1],
						))
					}

					return finish(events, data, p+2)
				default:
					lower := httpchars.HeaderName(c)
					if lower == 0 {
						return fail(events, newError(KindBrokenHeader, p,
							"broken first symbol of header: %02X", c,
						))
					}

					if c != lower {
						data[p] = lower
					}

					tb = p
					state = eHeaderKey
				}
			case eHeaderKey:
				if lower := httpchars.HeaderName(c); lower != 0 {
					if c != lower {
						data[p] = lower
					}

					break
				}

				continuation = false

				switch {
				case c == ':':
					nameBegin, nameLen = tb, p-tb
					headers++
					state = eHeaderColonSP
				case httpchars.IsSpace(c):
					nameBegin, nameLen = tb, p-tb
					state = eHeaderKeySP
				case c == '\r' || c == '\n':
					events.warnf(WarnHeaderWithoutColon, "header %q has no colon, ignored", data[tb:p])
					state = eCR
					redo = true
				default:
					return fail(events, newError(KindBrokenHeader, p,
						"unexpected symbol in header name: %02X", c,
					))
				}
			case eHeaderKeySP:
				if httpchars.IsSpace(c) {
					break
				}

				if c != ':' {
					return fail(events, newError(KindBrokenHeader, p,
						"expected ':', received %q (%02x)", c, c,
					))
				}

				headers++
				state = eHeaderColonSP
			case eHeaderColonSP:
				if httpchars.IsSpace(c) {
					break
				}

				if c == '\r' || c == '\n' {
					if emitHeader(events, data, nameBegin, nameLen, p, p, continuation) == Stop {
						return -1, ErrStopped
					}

					state = eCR
					redo = true
					break
				}

				vb = p
				tainted = false
				state = eHeaderValue
				redo = true
			case eHeaderValue:
				if c != '\r' && c != '\n' {
					tainted = tainted || httpchars.IsControl(c)
					break
				}

				if tainted {
					events.warnf(WarnControlChar, "control character in value of header %q", data[nameBegin:nameBegin+nameLen])
				}

				if emitHeader(events, data, nameBegin, nameLen, vb, p, continuation) == Stop {
					return -1, ErrStopped
				}

				state = eCR
				redo = true
			}
		}
	}

	// the input is over, but the state machine is not
	switch state {
	case eMethod, ePath, eQuery, eProto:
		return fail(events, newError(KindBrokenRequestLine, len(data),
			"unexpected EOF while parsing request line",
		))
	case eStatusSP, eStatus:
		return fail(events, newError(KindBrokenResponseLine, len(data),
			"unexpected EOF while parsing response line",
		))
	case eReasonSP:
		if events.OnResponseLine(code, span(data, len(data), len(data)), major, minor) == Stop {
			return -1, ErrStopped
		}
	case eReason:
		events.warnf(WarnTruncated, "unexpected EOF while parsing reason phrase")
		if tainted {
			events.warnf(WarnControlChar, "control character in reason phrase")
		}

		if events.OnResponseLine(code, span(data, tb, len(data)), major, minor) == Stop {
			return -1, ErrStopped
		}
	case eHeaderKey, eHeaderKeySP:
		return fail(events, newError(KindBrokenHeader, len(data),
			"unexpected EOF while parsing header name",
		))
	case eHeaderColonSP:
		if emitHeader(events, data, nameBegin, nameLen, len(data), len(data), continuation) == Stop {
			return -1, ErrStopped
		}
	case eHeaderValue:
		events.warnf(WarnTruncated, "unexpected EOF while parsing value of header %q", data[nameBegin:nameBegin+nameLen])
		if tainted {
			events.warnf(WarnControlChar, "control character in value of header %q", data[nameBegin:nameBegin+nameLen])
		}

		if emitHeader(events, data, nameBegin, nameLen, vb, len(data), continuation) == Stop {
			return -1, ErrStopped
		}
	}

	return finish(events, data, len(data))
}

func emitHeader(events *Events, data []byte, nameBegin, nameLen, valueBegin, valueEnd int, continuation bool) Signal {
	if events.OnHeader == nil {
		return Continue
	}

	return events.OnHeader(
		span(data, nameBegin, nameBegin+nameLen),
		span(data, valueBegin, valueEnd),
		continuation,
	)
}

func finish(events *Events, data []byte, body int) (int, error) {
	if events.OnBody != nil && events.OnBody(span(data, body, len(data))) == Stop {
		return -1, ErrStopped
	}

	return body, nil
}

func fail(events *Events, err *Error) (int, error) {
	if events.OnError != nil {
		events.OnError(err)
	}

	return -1, err
}

// span returns a view of data[begin:end], which can't be grown into the rest of data.
func span(data []byte, begin, end int) []byte {
	return data[begin:end:end]
}
