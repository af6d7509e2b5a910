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
	"encoding/binary"

	"github.com/dlt-go/dlt/dlterr"
	"github.com/dlt-go/dlt/internal/bufview"
)

// standardHeaderMinLength is the size of the always-present part of the
// standard header, before any optional fields.
const standardHeaderMinLength = 4

// header_type bit masks, per AUTOSAR PRS_LogAndTraceProtocol Table 35.
const (
	maskUseExtendedHeader byte = 0b0000_0001
	maskMsbFirst          byte = 0b0000_0010
	maskWithEcuID         byte = 0b0000_0100
	maskWithSessionID     byte = 0b0000_1000
	maskWithTimestamp     byte = 0b0001_0000
	maskVersionNumber     byte = 0b1110_0000
)

// StandardHeader is the always-present transport prefix that follows the
// storage header. Its own fields (header_type, message_counter, length,
// and the three optional fields) are always big-endian; the
// MsbFirst bit governs the endianness of everything past it.
type StandardHeader struct {
	headerType byte
	// MessageCounter increments per message sent by an ECU.
	MessageCounter byte
	// Length is the total size in bytes of the message, excluding the
	// storage header.
	Length uint16
	// ECUID is present iff HasECUID(); it overrides the storage header's
	// ECU ID when set. Borrows from the decode buffer.
	ECUID string
	// SessionID is present iff HasSessionID().
	SessionID uint32
	// Timestamp is present iff HasTimestamp(), in 0.1ms units since ECU start.
	Timestamp uint32

	hasECUID     bool
	hasSessionID bool
	hasTimestamp bool
}

// UseExtendedHeader reports whether an ExtendedHeader follows.
func (h StandardHeader) UseExtendedHeader() bool { return h.headerType&maskUseExtendedHeader != 0 }

// MsbFirst reports whether everything past the standard header
// (extended header numerics, payload message ID, verbose argument
// type-info and values) is big-endian.
func (h StandardHeader) MsbFirst() bool { return h.headerType&maskMsbFirst != 0 }

// HasECUID reports whether ECUID is populated.
func (h StandardHeader) HasECUID() bool { return h.hasECUID }

// HasSessionID reports whether SessionID is populated.
func (h StandardHeader) HasSessionID() bool { return h.hasSessionID }

// HasTimestamp reports whether Timestamp is populated.
func (h StandardHeader) HasTimestamp() bool { return h.hasTimestamp }

// Version is the 3-bit protocol version carried in header_type bits 5..7.
func (h StandardHeader) Version() byte { return (h.headerType & maskVersionNumber) >> 5 }

// Len is the number of bytes this header occupies on the wire: 4 plus 4
// for each optional field present.
func (h StandardHeader) Len() int {
	n := standardHeaderMinLength
	if h.hasECUID {
		n += 4
	}
	if h.hasSessionID {
		n += 4
	}
	if h.hasTimestamp {
		n += 4
	}
	return n
}

// decodeStandardHeader parses a StandardHeader from the start of buf.
func decodeStandardHeader(buf []byte) (StandardHeader, error) {
	if len(buf) < standardHeaderMinLength {
		return StandardHeader{}, dlterr.NotEnoughData(standardHeaderMinLength, len(buf))
	}

	headerType := buf[0]
	h := StandardHeader{
		headerType:     headerType,
		MessageCounter: buf[1],
		Length:         binary.BigEndian.Uint16(buf[2:4]),
		hasECUID:       headerType&maskWithEcuID != 0,
		hasSessionID:   headerType&maskWithSessionID != 0,
		hasTimestamp:   headerType&maskWithTimestamp != 0,
	}

	needed := 4 * (boolToInt(h.hasECUID) + boolToInt(h.hasSessionID) + boolToInt(h.hasTimestamp))
	rest := buf[standardHeaderMinLength:]
	if len(rest) < needed {
		return StandardHeader{}, dlterr.NotEnoughData(standardHeaderMinLength+needed, standardHeaderMinLength+len(rest))
	}

	pos := 0
	if h.hasECUID {
		idBytes := rest[pos : pos+4]
		if !bufview.ValidateUTF8(idBytes) {
			return StandardHeader{}, dlterr.ErrInvalidUTF8
		}
		h.ECUID = bufview.TrimmedID(idBytes)
		pos += 4
	}
	if h.hasSessionID {
		h.SessionID = binary.BigEndian.Uint32(rest[pos : pos+4])
		pos += 4
	}
	if h.hasTimestamp {
		h.Timestamp = binary.BigEndian.Uint32(rest[pos : pos+4])
		pos += 4
	}

	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
