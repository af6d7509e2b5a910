/*
Copyright (c) the dlt authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bufview turns byte slices borrowed from a decode buffer into
// strings without copying. The returned strings alias the input slice;
// callers must not retain them past the lifetime of the buffer they were
// taken from, and must never write through the original slice afterwards.
package bufview

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// String borrows b as a string with no allocation. b must not be mutated
// afterwards: the returned string shares its backing array.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// TrimmedID borrows a fixed-width, NUL-padded ASCII identifier field (an
// ECU/application/context ID) as a string with trailing NUL bytes
// removed, with no allocation.
func TrimmedID(b []byte) string {
	return strings.TrimRight(String(b), "\x00")
}

// ValidateUTF8 reports whether b is well-formed UTF-8. It takes a fast
// path for the common case of a short, all-ASCII run (the 4-byte ECU/App/
// Context ID fields that sit on the framing hot path) using a SWAR
// high-bit scan before falling back to utf8.Valid for anything with the
// top bit set anywhere.
//
// The SWAR technique - checking 8 bytes at a time for a set 0x80 bit - is
// the same one used to count UTF-8 continuation bytes in bulk; here we
// only need the yes/no "is this pure ASCII" answer, which is cheaper than
// reasoning about continuation-byte counts.
func ValidateUTF8(b []byte) bool {
	if asciiFastPath(b) {
		return true
	}
	return utf8.Valid(b)
}

// asciiFastPath reports true if every byte in b has its high bit clear,
// i.e. b is pure 7-bit ASCII and therefore trivially valid UTF-8.
func asciiFastPath(b []byte) bool {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		var word uint64
		for j := 0; j < 8; j++ {
			word |= uint64(b[i+j]) << (8 * j)
		}
		if word&0x8080808080808080 != 0 {
			return false
		}
	}
	for ; i < len(b); i++ {
		if b[i]&0x80 != 0 {
			return false
		}
	}
	return true
}
