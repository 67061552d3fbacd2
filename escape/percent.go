package escape

import (
	"strconv"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

const upperhex = "0123456789ABCDEF"

// unreserved reports whether b needs no encoding in any position,
// per RFC 3986 section 2.3.
func unreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	default:
		return false
	}
}

// reserved reports whether b is in the RFC 3986 section 2.2 reserved set.
func reserved(b byte) bool {
	switch b {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	default:
		return false
	}
}

// escapeExempting percent-encodes every byte of s the exempt predicate
// does not pass through, using uppercase hex digits.
func escapeExempting(s string, exempt func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if exempt(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}

// URL percent-encodes s for use as a URI component,
// encoding every byte outside the RFC 3986 unreserved set.
func URL(s string) string {
	return escapeExempting(s, unreserved)
}

// ReservedExpansion percent-encodes s for RFC 6570 reserved expansion,
// passing through both the unreserved and the reserved RFC 3986 sets.
func ReservedExpansion(s string) string {
	return escapeExempting(s, func(b byte) bool {
		return unreserved(b) || reserved(b)
	})
}

// unhex resolves an ASCII hex digit to its value, or -1.
func unhex(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// Unescape reverses percent-encoding in s, turning each %XX sequence back
// into the byte it encodes. Bytes outside %XX sequences pass through
// untouched. A truncated sequence or non-hex digits fail with an
// invalid-argument *waypoint.Status; no partial result is returned.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		if i+2 >= len(s) {
			return "", waypoint.InvalidArgument("truncated percent escape in " + strconv.Quote(s))
		}

		hi, lo := unhex(s[i+1]), unhex(s[i+2])
		if hi < 0 || lo < 0 {
			return "", waypoint.InvalidArgument("non-hex percent escape in " + strconv.Quote(s))
		}

		b.WriteByte(byte(hi<<4 | lo))
		i += 2
	}

	return b.String(), nil
}
