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
	"fmt"

	"github.com/dlt-go/dlt/dlterr"
)

// Message is one fully decoded DLT message: its persistence prefix, its
// transport headers, and its body.
type Message struct {
	Storage  StorageHeader
	Standard StandardHeader
	// Extended is nil when the standard header's UseExtendedHeader bit is
	// clear.
	Extended *ExtendedHeader
	Payload  Payload

	raw []byte
}

// ECUID returns the ECU identifier that produced this message. The
// standard header's own ECU ID, when present, overrides the storage
// header's.
func (m Message) ECUID() string {
	if m.Standard.HasECUID() {
		return m.Standard.ECUID
	}
	return m.Storage.ECUID
}

// ApplicationID returns the application identifier, or "" if this
// message has no extended header.
func (m Message) ApplicationID() string {
	if m.Extended == nil {
		return ""
	}
	return m.Extended.ApplicationID
}

// ContextID returns the logging context identifier, or "" if this
// message has no extended header.
func (m Message) ContextID() string {
	if m.Extended == nil {
		return ""
	}
	return m.Extended.ContextID
}

// Verbose reports whether the payload is a typed-argument stream. A
// message with no extended header is never verbose.
func (m Message) Verbose() bool {
	return m.Extended != nil && m.Extended.Verbose()
}

// MessageType returns the message's class, or MessageTypeLog as the
// zero-value default when there is no extended header to classify it.
func (m Message) MessageType() MessageType {
	if m.Extended == nil {
		return MessageTypeLog
	}
	return m.Extended.MessageType()
}

// TypeInfo returns the full (message_type, sub-type) classification, or
// the zero value if there is no extended header.
func (m Message) TypeInfo() TypeInfo {
	if m.Extended == nil {
		return TypeInfo{}
	}
	return m.Extended.TypeInfo()
}

// Timestamp returns the standard header's timestamp and whether it was
// present.
func (m Message) Timestamp() (uint32, bool) {
	return m.Standard.Timestamp, m.Standard.HasTimestamp()
}

// Raw returns the complete wire bytes of this message, storage header
// included, borrowed from the decode buffer.
func (m Message) Raw() []byte { return m.raw }

// Len reports how many bytes this message occupied on the wire.
func (m Message) Len() int { return len(m.raw) }

// decodeMessage parses one complete message (storage header through
// payload) from the start of buf. n is the number of bytes the message
// occupies. When err is non-nil, n is still the declared message length
// if the standard header was read and the message fits in buf, so the
// Reader can skip it; otherwise n is 0.
func decodeMessage(buf []byte, offset int64) (Message, int, error) {
	storage, err := decodeStorageHeader(buf)
	if err != nil {
		return Message{}, 0, err
	}
	pos := storage.Len()

	std, err := decodeStandardHeader(buf[pos:])
	if err != nil {
		return Message{}, 0, err
	}
	stdLen := std.Len()
	if int(std.Length) < stdLen {
		return Message{}, 0, dlterr.NotEnoughData(stdLen, int(std.Length))
	}
	msgEnd := pos + int(std.Length)
	if msgEnd > len(buf) {
		return Message{}, 0, fmt.Errorf("%w: needed %d bytes, had %d", dlterr.ErrLengthExceedsBuffer, msgEnd, len(buf))
	}
	pos += stdLen

	var ext *ExtendedHeader
	if std.UseExtendedHeader() {
		e, err := decodeExtendedHeader(buf[pos:msgEnd])
		if err != nil {
			return Message{}, msgEnd, err
		}
		pos += e.Len()
		ext = &e
	}

	order := byteOrder(std.MsbFirst())
	verbose := ext != nil && ext.Verbose()
	numArgs := 0
	if ext != nil {
		numArgs = int(ext.NumberOfArguments)
	}
	payload, err := decodePayload(buf[pos:msgEnd], order, verbose, numArgs, offset+int64(pos))
	if err != nil {
		return Message{}, msgEnd, err
	}

	return Message{
		Storage:  storage,
		Standard: std,
		Extended: ext,
		Payload:  payload,
		raw:      buf[:msgEnd],
	}, msgEnd, nil
}
