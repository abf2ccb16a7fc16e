// Package requestgen builds synthetic HTTP messages for tests and benchmarks.
package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
)

// Header is a single name-value pair of a generated message.
type Header struct {
	Name, Value string
}

// Headers returns n headers, the last of which is always Host. Names of others are
// random, so they are unique within the set with overwhelming probability.
func Headers(n int) []Header {
	hdrs := make([]Header, 0, n)

	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, Header{
			Name:  "X-" + uniuri.NewLen(16) + "-" + strconv.Itoa(i),
			Value: strings.Repeat("b", 100),
		})
	}

	return append(hdrs, Header{Name: "Host", Value: "localhost"})
}

func HeadersBlock(hdrs []Header) (buff []byte) {
	for _, h := range hdrs {
		buff = append(buff, h.Name+": "+h.Value+"\r\n"...)
	}

	return buff
}

// Generate returns a GET request to the uri with n headers.
func Generate(uri string, n int) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(Headers(n))...)

	return append(request, '\r', '\n')
}

// Response returns a 200 OK response with n headers and the body.
func Response(n int, body string) (response []byte) {
	response = append(response, "HTTP/1.1 200 OK\r\n"...)
	response = append(response, HeadersBlock(Headers(n))...)
	response = append(response, "Content-Length: "+strconv.Itoa(len(body))+"\r\n\r\n"...)

	return append(response, body...)
}

// Query returns a parameter string of n pairs.
func Query(n int) string {
	pairs := make([]string, n)
	for i := range pairs {
		pairs[i] = uniuri.NewLen(8) + "=" + uniuri.NewLen(24)
	}

	return strings.Join(pairs, "&")
}
