// Package httpchars holds byte classification tables shared by the parsers.
package httpchars

import "github.com/scott-ainsworth/go-ascii"

// headerName maps every byte allowed in a header name to its lower-case form. Bytes
// mapping to zero are not allowed in a header name.
var headerName = [256]byte{
	'-': '-', '_': '_',
	'0': '0', '1': '1', '2': '2', '3': '3', '4': '4',
	'5': '5', '6': '6', '7': '7', '8': '8', '9': '9',
	'A': 'a', 'B': 'b', 'C': 'c', 'D': 'd', 'E': 'e', 'F': 'f', 'G': 'g',
	'H': 'h', 'I': 'i', 'J': 'j', 'K': 'k', 'L': 'l', 'M': 'm', 'N': 'n',
	'O': 'o', 'P': 'p', 'Q': 'q', 'R': 'r', 'S': 's', 'T': 't', 'U': 'u',
	'V': 'v', 'W': 'w', 'X': 'x', 'Y': 'y', 'Z': 'z',
	'a': 'a', 'b': 'b', 'c': 'c', 'd': 'd', 'e': 'e', 'f': 'f', 'g': 'g',
	'h': 'h', 'i': 'i', 'j': 'j', 'k': 'k', 'l': 'l', 'm': 'm', 'n': 'n',
	'o': 'o', 'p': 'p', 'q': 'q', 'r': 'r', 's': 's', 't': 't', 'u': 'u',
	'v': 'v', 'w': 'w', 'x': 'x', 'y': 'y', 'z': 'z',
}

// HeaderName returns the lower-cased form of c, or 0 if c may not appear in a
// header name.
func HeaderName(c byte) byte {
	return headerName[c]
}

// IsControl reports whether c is a control byte, disallowed in field values. Horizontal
// tab is allowed, and so are octets above 0x7f, as obs-text is still legal there.
func IsControl(c byte) bool {
	return c != '\t' && ascii.IsControl(c)
}

// IsSpace reports whether c is a space or a horizontal tab.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
