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

package dlt

import (
	"bytes"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/dlt-go/dlt/dlterr"
)

// minMessageLength is the smallest number of bytes a message could ever
// occupy: a storage header plus a standard header with no optional
// fields and zero-length payload.
const minMessageLength = storageHeaderSize + standardHeaderMinLength

// Reader decodes a sequence of messages out of an in-memory buffer,
// resynchronizing past corrupt or truncated ones. It is not safe for
// concurrent use; drive independent buffers with independent Readers
// (see ParseAll for doing so concurrently).
type Reader struct {
	buf []byte
	pos int
	log *log.Logger

	// fatal is sticky: once set, every subsequent Next returns it.
	fatal *FatalError
}

// NewReader returns a Reader over buf. buf is retained, not copied;
// every Message it produces borrows from it, so the caller must not
// mutate buf while the Reader or any of its results are in use. Resynchronization and fatal termination are logged
// to logrus.StandardLogger(); use WithLogger for a different target.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, log: log.StandardLogger()}
}

// WithLogger sets the logger Reader uses for resync/fatal diagnostics and
// returns r for chaining.
func (r *Reader) WithLogger(l *log.Logger) *Reader {
	r.log = l
	return r
}

// Remaining is an upper bound on the number of whole messages left to
// decode, based on the smallest possible message size. It is a sizing
// hint, not an exact count.
func (r *Reader) Remaining() int {
	left := len(r.buf) - r.pos
	if left <= 0 {
		return 0
	}
	return left / minMessageLength
}

// Next decodes the next message. It returns (msg, nil) on success,
// (nil, io.EOF) once the buffer is exhausted, (nil, *RecoverableError)
// when one message was lost but the Reader has already resynchronized
// past it (the next call to Next resumes normally), and
// (nil, *FatalError) once framing integrity is lost — a state every
// later call to Next reports again without re-examining the buffer.
func (r *Reader) Next() (*Message, error) {
	if r.fatal != nil {
		return nil, r.fatal
	}
	if r.pos >= len(r.buf) {
		return nil, io.EOF
	}

	start := r.pos
	msg, n, err := decodeMessage(r.buf[start:], int64(start))
	if err == nil {
		r.pos = start + n
		return &msg, nil
	}

	return nil, r.recover(start, n, err)
}

// recover classifies a decodeMessage failure and advances the cursor so
// the next call to Next makes progress: by the declared message length
// when it was parsed and trustworthy, otherwise by rescanning forward
// for the next storage-header magic. If neither could move the cursor
// past start, framing is declared lost.
func (r *Reader) recover(start, trustworthyLen int, cause error) error {
	var skip int64
	if trustworthyLen > 0 {
		// The standard header's declared length was read successfully, so
		// we know exactly where the next message begins even though this
		// one failed to fully decode.
		r.pos = start + trustworthyLen
		skip = int64(trustworthyLen)
	} else {
		next := r.rescan(start + 1)
		if next < 0 {
			r.pos = len(r.buf)
			r.fatal = &FatalError{Err: cause, Off: int64(start)}
			r.log.Warnf("dlt: no further storage header found after offset %d, framing lost: %v", start, cause)
			return r.fatal
		}
		r.pos = next
		skip = int64(next - start)
	}

	if r.pos <= start {
		// Defensive: every path above should strictly advance the cursor.
		// If it somehow didn't, stop rather than loop forever.
		r.fatal = &FatalError{Err: errors.New("resynchronization made no forward progress"), Off: int64(start)}
		r.log.Warnf("dlt: fatal framing error at offset %d: %v", start, r.fatal)
		return r.fatal
	}

	r.log.Debugf("dlt: resynchronized past offset %d, skipped %d bytes: %v", start, skip, cause)
	return &RecoverableError{Err: cause, Off: int64(start), SkipBytes: skip}
}

// rescan searches r.buf for the next occurrence of the storage-header
// magic at or after from, returning its index or -1 if none remains.
func (r *Reader) rescan(from int) int {
	if from >= len(r.buf) {
		return -1
	}
	idx := bytes.Index(r.buf[from:], dltPattern[:])
	if idx < 0 {
		return -1
	}
	return from + idx
}

// Predicate filters decoded messages. Implementations are expected to be
// cheap and side-effect-free; Keep is called once per successfully
// decoded message, in order.
type Predicate interface {
	Keep(m *Message) bool
}

// PredicateFunc adapts a function to a Predicate.
type PredicateFunc func(m *Message) bool

// Keep implements Predicate.
func (f PredicateFunc) Keep(m *Message) bool { return f(m) }

// Filtered wraps a Reader so that Next silently skips both decode
// errors classified as Recoverable and messages rejected by pred,
// surfacing only messages pred accepts and the terminal io.EOF/*FatalError.
// Use the unwrapped Reader directly when callers need to observe or
// count recoverable errors (e.g. to feed dltstats).
type Filtered struct {
	r    *Reader
	pred Predicate
}

// NewFiltered wraps r, keeping only messages pred.Keep accepts.
func NewFiltered(r *Reader, pred Predicate) *Filtered {
	return &Filtered{r: r, pred: pred}
}

// Next returns the next message accepted by the predicate, skipping
// recoverable decode errors and rejected messages along the way.
func (f *Filtered) Next() (*Message, error) {
	for {
		msg, err := f.r.Next()
		if err == nil {
			if f.pred == nil || f.pred.Keep(msg) {
				return msg, nil
			}
			continue
		}
		var recoverable *RecoverableError
		if errors.As(err, &recoverable) {
			continue
		}
		return nil, err
	}
}
