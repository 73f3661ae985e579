// Package bytescan provides multi-needle byte search on top of the
// platform-optimized bytes.IndexByte.
package bytescan

import "bytes"

// IndexAny2 returns the index of the first occurrence of c0 or c1 in b,
// or -1 if neither occurs.
func IndexAny2(b []byte, c0, c1 byte) int {
	i := bytes.IndexByte(b, c0)
	if i >= 0 {
		b = b[:i]
	}
	if j := bytes.IndexByte(b, c1); j >= 0 {
		return j
	}
	return i
}
