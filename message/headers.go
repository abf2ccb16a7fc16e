package message

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is an ordered list of fields with case-insensitive keys. Repeated keys are
// always stored as separate pairs. Merging Headers present them the way a recipient
// combines repeated fields: a single value per key, joined by a comma and a space,
// placed at the first appearance of the key.
type Headers struct {
	pairs      []Pair
	merge      bool
	valuesBuff []string
	keysBuff   []string
}

// NewHeaders returns Headers with n pre-allocated seats.
func NewHeaders(n int, merge bool) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
		merge: merge,
	}
}

func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{Key: key, Value: value})
	return h
}

// Value returns the value of the key, or an empty string if there's none. If the key is
// repeated, merging Headers return all the values joined and others return the first one.
func (h *Headers) Value(key string) string {
	if h.merge {
		return h.Joined(key)
	}

	if i := h.index(key, 0); i != -1 {
		return h.pairs[i].Value
	}

	return ""
}

// Values returns all the values of the key in order of appearance, or nil.
//
// WARNING: the returned slice is reused by consequent calls.
func (h *Headers) Values(key string) []string {
	h.valuesBuff = h.valuesBuff[:0]

	for i := h.index(key, 0); i != -1; i = h.index(key, i+1) {
		h.valuesBuff = append(h.valuesBuff, h.pairs[i].Value)
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Joined returns all the values of the key separated by a comma and a space. A single
// value is returned as is, without allocating.
func (h *Headers) Joined(key string) string {
	first := h.index(key, 0)
	switch {
	case first == -1:
		return ""
	case h.index(key, first+1) == -1:
		return h.pairs[first].Value
	}

	return strings.Join(h.Values(key), ", ")
}

// Keys returns unique keys in order of their first appearance.
//
// WARNING: the returned slice is reused by consequent calls.
func (h *Headers) Keys() []string {
	h.keysBuff = h.keysBuff[:0]

	for i, pair := range h.pairs {
		if h.index(pair.Key, 0) == i {
			h.keysBuff = append(h.keysBuff, pair.Key)
		}
	}

	return h.keysBuff
}

// All iterates over the fields. For merging Headers, every key is yielded once.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i, pair := range h.pairs {
			value := pair.Value

			if h.merge {
				if h.index(pair.Key, 0) != i {
					continue
				}

				value = h.Joined(pair.Key)
			}

			if !yield(pair.Key, value) {
				return
			}
		}
	}
}

// Len returns the number of stored pairs, including repeated keys.
func (h *Headers) Len() int {
	return len(h.pairs)
}

func (h *Headers) index(key string, from int) int {
	for i := from; i < len(h.pairs); i++ {
		if strcomp.EqualFold(key, h.pairs[i].Key) {
			return i
		}
	}

	return -1
}

func (h *Headers) lastValue() string {
	return h.pairs[len(h.pairs)-1].Value
}

// replaceLast sets the value of the most recent pair. It is how continuation lines get
// into the field they continue.
func (h *Headers) replaceLast(value string) {
	h.pairs[len(h.pairs)-1].Value = value
}
