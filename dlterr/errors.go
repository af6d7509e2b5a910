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

// Package dlterr holds the error taxonomy shared by the dlt root package
// and its argument sub-decoder: every decode failure is classified as
// either Recoverable (a single message is lost but framing survives) or
// Fatal (framing integrity itself is lost), and every error carries the
// byte offset where it was detected.
package dlterr

import "fmt"

// OffsetError is implemented by every error this module returns. Offset
// is the byte position in the original buffer where the failure was
// detected.
type OffsetError interface {
	error
	Offset() int64
}

// Recoverable means a single message (or a single verbose argument)
// could not be decoded, but the rest of the buffer remains parseable.
type Recoverable struct {
	// Err is the underlying cause.
	Err error
	// Off is where decoding was attempting to read from.
	Off int64
	// SkipBytes is how many bytes the framing Reader should advance past
	// the message start to reach the next message, or 0 if unknown (in
	// which case the Reader falls back to a magic-pattern rescan).
	SkipBytes int64
}

func (e *Recoverable) Error() string {
	return fmt.Sprintf("dlt: recoverable error at offset %d: %v", e.Off, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Recoverable) Unwrap() error { return e.Err }

// Offset implements OffsetError.
func (e *Recoverable) Offset() int64 { return e.Off }

// Fatal means framing integrity itself is lost: the Reader cannot safely
// continue and all subsequent calls to Next yield end-of-sequence.
type Fatal struct {
	Err error
	Off int64
}

func (e *Fatal) Error() string {
	return fmt.Sprintf("dlt: fatal error at offset %d: %v", e.Off, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Fatal) Unwrap() error { return e.Err }

// Offset implements OffsetError.
func (e *Fatal) Offset() int64 { return e.Off }

// Sentinel causes, wrapped by Recoverable/Fatal above and matched with
// errors.Is by callers that care about *why*, not just recoverability.
var (
	// ErrNotEnoughData means fewer bytes remain than a fixed-size field requires.
	ErrNotEnoughData = fmt.Errorf("not enough data")
	// ErrMissingDltPattern means the expected "DLT\x01" storage-header magic was not found.
	ErrMissingDltPattern = fmt.Errorf("missing DLT storage header pattern")
	// ErrUnsupportedArgument means a verbose argument used a type/width this revision declines to decode.
	ErrUnsupportedArgument = fmt.Errorf("unsupported argument type")
	// ErrUnknownArgumentType means the type-info bits did not match any known type class.
	ErrUnknownArgumentType = fmt.Errorf("unknown argument type")
	// ErrUnimplementedArgument means the argument type is part of the wire format but intentionally not decoded (Array, Struct).
	ErrUnimplementedArgument = fmt.Errorf("unimplemented argument type")
	// ErrMalformedArgumentLength means a length-prefixed argument (String, Raw) declared a length that runs past the payload.
	ErrMalformedArgumentLength = fmt.Errorf("malformed argument length")
	// ErrInvalidUTF8 means a textual field failed UTF-8 validation.
	ErrInvalidUTF8 = fmt.Errorf("invalid UTF-8")
	// ErrBufferTruncated means the buffer ends in the middle of a fixed header.
	ErrBufferTruncated = fmt.Errorf("buffer truncated")
	// ErrLengthExceedsBuffer means the standard header's declared length runs past the end of the buffer.
	ErrLengthExceedsBuffer = fmt.Errorf("declared message length exceeds remaining buffer")
)

// NotEnoughData builds an ErrNotEnoughData-wrapping error reporting how
// many bytes were needed versus available.
func NotEnoughData(needed, available int) error {
	return fmt.Errorf("%w: needed %d bytes, had %d", ErrNotEnoughData, needed, available)
}
