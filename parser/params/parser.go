// Package params parses flat parameter strings like `a=1&b=2`, as found in query strings
// and urlencoded bodies. Nothing is decoded: names and values are reported verbatim as
// views into the input.
package params

import "iter"

type parserState uint8

const (
	eName parserState = iota + 1
	eValue
)

// Parse calls onParam for every pair in data, in order of appearance. A name without
// `=` is reported with an empty value. Pairs where both name and value are empty are
// skipped, as well as empty names followed by `&`.
//
// If onParam returns false, parsing stops and the offset of the separator the parser
// has stopped at is returned. Otherwise, len(data) is returned.
func Parse(data []byte, onParam func(name, value []byte) bool) int {
	var (
		state                          = eName
		nameBegin, nameEnd, valueBegin int
	)

	for i, c := range data {
		switch state {
		case eName:
			switch c {
			case '=':
				nameEnd = i
				valueBegin = i + 1
				state = eValue
			case '&':
				if i > nameBegin && !onParam(span(data, nameBegin, i), span(data, i, i)) {
					return i
				}

				nameBegin = i + 1
			}
		case eValue:
			if c != '&' {
				break
			}

			if (i > valueBegin || nameEnd > nameBegin) &&
				!onParam(span(data, nameBegin, nameEnd), span(data, valueBegin, i)) {
				return i
			}

			nameBegin = i + 1
			state = eName
		}
	}

	switch state {
	case eName:
		if len(data) > nameBegin {
			onParam(span(data, nameBegin, len(data)), span(data, len(data), len(data)))
		}
	case eValue:
		if len(data) > valueBegin || nameEnd > nameBegin {
			onParam(span(data, nameBegin, nameEnd), span(data, valueBegin, len(data)))
		}
	}

	return len(data)
}

// All returns an iterator over pairs of data. See Parse for details.
func All(data []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func(name, value []byte) bool) {
		Parse(data, yield)
	}
}

func span(data []byte, begin, end int) []byte {
	return data[begin:end:end]
}
