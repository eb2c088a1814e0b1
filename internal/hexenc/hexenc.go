// Package hexenc renders integer parameters as the space-separated, 2-digit
// uppercase hexadecimal byte tokens used throughout UDS request encoding.
//
// All functions are pure and total over non-negative inputs. Values wider than
// the target field are truncated to the low bits, never rejected; the request
// encoder is deliberately permissive.
package hexenc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Byte renders the low 8 bits of v as a 2-digit uppercase hex token.
// Out-of-range values are silently masked to v & 0xFF.
func Byte(v int) string {
	return fmt.Sprintf("%02X", v&0xFF)
}

// Minimal renders v as its minimal big-endian byte sequence, one token per
// byte. The width is the smallest whole number of bytes that holds v, with a
// minimum of one byte, so Minimal(0) is "00" and Minimal(0x1FF) is "01 FF".
func Minimal(v int) string {
	return Fixed(v, byteLen(v))
}

// Fixed renders v as exactly width big-endian bytes, zero padded at the most
// significant end and truncated to the low width bytes when v is wider.
// A width of zero or less yields the empty string.
func Fixed(v, width int) string {
	if width <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(width*3 - 1)
	for i := width - 1; i >= 0; i-- {
		if i < width-1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", (v>>(i*8))&0xFF)
	}

	return sb.String()
}

// List renders each element of values as a masked byte token, space joined.
// An empty or nil list yields the empty string.
func List(values []int) string {
	if len(values) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(values)*3 - 1)
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v&0xFF)
	}

	return sb.String()
}

// byteLen returns the number of bytes needed to hold v, minimum 1.
func byteLen(v int) int {
	n := (bits.Len64(uint64(v)) + 7) / 8
	if n == 0 {
		n = 1
	}
	return n
}
