package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigo-web/httpfast/parser/http1"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("request from stdin", func(t *testing.T) {
		stdin := strings.NewReader("GET /hello?name=world HTTP/1.1\r\nHost: localhost\r\n\r\n")
		var stdout bytes.Buffer
		require.NoError(t, run(nil, stdin, &stdout))

		var d dump
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
		require.Equal(t, "request", d.Type)
		require.Equal(t, "GET", d.Method)
		require.Equal(t, "/hello", d.Path)
		require.Equal(t, "HTTP/1.1", d.Version)
		require.Equal(t, []pair{{"host", "localhost"}}, d.Headers)
		require.Equal(t, []pair{{"name", "world"}}, d.Params)
	})

	t.Run("response from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "response.txt")
		require.NoError(t, os.WriteFile(path, []byte("HTTP/1.1 201 Created\nLocation: /x\n\nok"), 0o600))
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"-mode", "response", path}, nil, &stdout))

		var d dump
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
		require.Equal(t, "response", d.Type)
		require.Equal(t, uint(201), d.StatusCode)
		require.Equal(t, "Created", d.Reason)
		require.Equal(t, "ok", d.Body)
	})

	t.Run("merge", func(t *testing.T) {
		stdin := strings.NewReader("GET / HTTP/1.1\nAccept: a\nAccept: b\n\n")
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"-merge"}, stdin, &stdout))

		var d dump
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
		require.Equal(t, []pair{{"accept", "a, b"}}, d.Headers)
	})

	t.Run("params", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"-mode", "params"}, strings.NewReader("a=1&b"), &stdout))

		var result []pair
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		require.Equal(t, []pair{{"a", "1"}, {"b", ""}}, result)
	})

	t.Run("malformed", func(t *testing.T) {
		err := run(nil, strings.NewReader("GET\r\n\r\n"), new(bytes.Buffer))
		require.ErrorIs(t, err, http1.ErrBrokenRequestLine)
	})

	t.Run("unknown mode", func(t *testing.T) {
		err := run([]string{"-mode", "chunked"}, strings.NewReader(""), new(bytes.Buffer))
		require.ErrorIs(t, err, errUnknownMode)
	})
}
