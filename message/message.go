// Package message collects parser events into a Message. Everything except joined
// continuation values refers to the parsed buffer, so the buffer must outlive the
// Message and must not be modified.
package message

import (
	"fmt"

	"github.com/indigo-web/httpfast/config"
	"github.com/indigo-web/httpfast/parser/http1"
	"github.com/indigo-web/httpfast/parser/params"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

type Message struct {
	// Method, Path and Query are set for requests only
	Method, Path, Query string
	// Code and Reason are set for responses only
	Code   uint
	Reason string
	Major  int
	Minor  int
	// Headers hold the header fields in order of appearance. Continuation lines are
	// already joined to the value of the header they continue. Repeated fields are
	// merged, if config.Headers.MergeRepeated is set.
	Headers *Headers
	// Params hold the query parameters of a request. They are not percent-decoded.
	Params *Headers
	Body   []byte
	// Warnings collect advisory notices reported by the parser.
	Warnings []string
	request  bool
}

// Protocol returns the protocol token, e.g. HTTP/1.1
func (m *Message) Protocol() string {
	return fmt.Sprintf("HTTP/%d.%d", m.Major, m.Minor)
}

// IsRequest tells whether the message was obtained by ParseRequest.
func (m *Message) IsRequest() bool {
	return m.request
}

// ParseRequest parses data as a request. Passed config may be nil, in this case
// config.Default() is used.
func ParseRequest(data []byte, cfg *config.Config) (*Message, error) {
	c := newCollector(cfg)
	c.events.OnRequestLine = c.onRequestLine

	return c.parse(data)
}

// ParseResponse parses data as a response. Passed config may be nil, in this case
// config.Default() is used.
func ParseResponse(data []byte, cfg *config.Config) (*Message, error) {
	c := newCollector(cfg)
	c.events.OnResponseLine = c.onResponseLine

	return c.parse(data)
}

type collector struct {
	cfg    *config.Config
	msg    *Message
	events http1.Events
	// is initialized lazily, as continuation lines are rare
	buff *buffer.Buffer
	// is set while the value of the last header is being grown in buff
	folding bool
	// is set when some limit was exceeded
	err error
}

func newCollector(cfg *config.Config) *collector {
	if cfg == nil {
		cfg = config.Default()
	}

	c := &collector{
		cfg: cfg,
		msg: &Message{
			Headers: NewHeaders(cfg.Headers.Number.Default, cfg.Headers.MergeRepeated),
			Params:  NewHeaders(cfg.Params.Prealloc, false),
		},
	}
	c.events.OnHeader = c.onHeader
	c.events.OnBody = c.onBody
	c.events.OnWarning = c.onWarning

	return c
}

func (c *collector) parse(data []byte) (*Message, error) {
	if _, err := http1.Parse(data, &c.events); err != nil {
		if c.err != nil {
			return nil, c.err
		}

		return nil, err
	}

	return c.msg, nil
}

func (c *collector) onRequestLine(method, path, query []byte, major, minor int) http1.Signal {
	c.msg.request = true
	c.msg.Method = uf.B2S(method)
	c.msg.Path = uf.B2S(path)
	c.msg.Query = uf.B2S(query)
	c.msg.Major, c.msg.Minor = major, minor

	params.Parse(query, c.onParam)
	if c.err != nil {
		return http1.Stop
	}

	return http1.Continue
}

func (c *collector) onParam(name, value []byte) bool {
	if c.msg.Params.Len() >= c.cfg.Params.Maximal {
		c.err = ErrTooManyParams
		return false
	}

	c.msg.Params.Add(uf.B2S(name), uf.B2S(value))
	return true
}

func (c *collector) onResponseLine(code uint, reason []byte, major, minor int) http1.Signal {
	c.msg.Code = code
	c.msg.Reason = uf.B2S(reason)
	c.msg.Major, c.msg.Minor = major, minor

	return http1.Continue
}

func (c *collector) onHeader(name, value []byte, continuation bool) http1.Signal {
	if continuation {
		return c.fold(value)
	}

	c.unfold()

	if c.msg.Headers.Len() >= c.cfg.Headers.Number.Maximal {
		c.err = ErrTooManyHeaders
		return http1.Stop
	}

	c.msg.Headers.Add(uf.B2S(name), uf.B2S(value))
	return http1.Continue
}

var space = []byte(" ")

// fold appends the continuation value to the last header, separated by a space. The
// joined value is grown in the buffer as a single segment, so the space limit applies
// to its final length.
func (c *collector) fold(value []byte) http1.Signal {
	if c.msg.Headers.Len() == 0 {
		// the parser rejects continuation at the first header, so it must be unreachable
		return http1.Continue
	}

	if c.buff == nil {
		c.buff = buffer.New(c.cfg.Headers.Space.Default, c.cfg.Headers.Space.Maximal)
	}

	if !c.folding {
		if !c.buff.Append(uf.S2B(c.msg.Headers.lastValue())) {
			c.err = ErrHeaderFieldsTooLarge
			return http1.Stop
		}

		c.folding = true
	}

	if !c.buff.Append(space) || !c.buff.Append(value) {
		c.err = ErrHeaderFieldsTooLarge
		return http1.Stop
	}

	return http1.Continue
}

// unfold completes the joined value, if there's any.
func (c *collector) unfold() {
	if !c.folding {
		return
	}

	c.msg.Headers.replaceLast(uf.B2S(c.buff.Finish()))
	c.folding = false
}

func (c *collector) onBody(body []byte) http1.Signal {
	c.unfold()
	c.msg.Body = body
	return http1.Continue
}

func (c *collector) onWarning(code http1.Warning, message string) {
	c.msg.Warnings = append(c.msg.Warnings, code.String()+": "+message)
}
