package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectAll(h *Headers) (pairs []Pair) {
	for key, value := range h.All() {
		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs
}

func TestHeaders(t *testing.T) {
	newHeaders := func(merge bool) *Headers {
		return NewHeaders(2, merge).
			Add("Accept", "text/html").
			Add("host", "localhost").
			Add("ACCEPT", "*/*")
	}

	t.Run("separate", func(t *testing.T) {
		h := newHeaders(false)
		require.Equal(t, "text/html", h.Value("accept"))
		require.Empty(t, h.Value("lorem"))
		require.Equal(t, []string{"text/html", "*/*"}, h.Values("Accept"))
		require.Nil(t, h.Values("lorem"))
		require.Equal(t, "text/html, */*", h.Joined("accept"))
		require.Equal(t, "localhost", h.Joined("HOST"))
		require.Empty(t, h.Joined("lorem"))
		require.Equal(t, []string{"Accept", "host"}, h.Keys())
		require.Equal(t, 3, h.Len())
		require.Equal(t, []Pair{
			{"Accept", "text/html"}, {"host", "localhost"}, {"ACCEPT", "*/*"},
		}, collectAll(h))
	})

	t.Run("merged", func(t *testing.T) {
		h := newHeaders(true)
		require.Equal(t, "text/html, */*", h.Value("accept"))
		require.Equal(t, "localhost", h.Value("host"))
		require.Equal(t, []string{"text/html", "*/*"}, h.Values("accept"))
		require.Equal(t, 3, h.Len())
		require.Equal(t, []Pair{
			{"Accept", "text/html, */*"}, {"host", "localhost"},
		}, collectAll(h))
	})

	t.Run("break", func(t *testing.T) {
		var keys []string
		for key := range newHeaders(false).All() {
			keys = append(keys, key)
			break
		}

		require.Equal(t, []string{"Accept"}, keys)
	})
}
