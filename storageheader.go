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

// storageHeaderSize is the fixed, always-present persistence prefix
// written when a message is archived to file.
const storageHeaderSize = 16

// dltPattern is the magic that must open every storage header.
var dltPattern = [4]byte{'D', 'L', 'T', 0x01}

// StorageHeader is the 16-byte persistence prefix: DLT magic, archival
// timestamp, and the ECU that produced the message. Always
// little-endian, regardless of the message's own MsbFirst bit.
type StorageHeader struct {
	Seconds      uint32
	Microseconds int32
	// ECUID borrows from the decode buffer; do not retain past its lifetime.
	ECUID string
}

// Len is the number of bytes a StorageHeader always occupies on the wire.
func (StorageHeader) Len() int { return storageHeaderSize }

// decodeStorageHeader parses a StorageHeader from the start of buf.
func decodeStorageHeader(buf []byte) (StorageHeader, error) {
	if len(buf) < storageHeaderSize {
		return StorageHeader{}, dlterr.NotEnoughData(storageHeaderSize, len(buf))
	}
	if buf[0] != dltPattern[0] || buf[1] != dltPattern[1] || buf[2] != dltPattern[2] || buf[3] != dltPattern[3] {
		return StorageHeader{}, dlterr.ErrMissingDltPattern
	}

	seconds := binary.LittleEndian.Uint32(buf[4:8])
	microseconds := int32(binary.LittleEndian.Uint32(buf[8:12])) //nolint:gosec // wire-specified signed field
	ecuIDBytes := buf[12:16]
	if !bufview.ValidateUTF8(ecuIDBytes) {
		return StorageHeader{}, dlterr.ErrInvalidUTF8
	}

	return StorageHeader{
		Seconds:      seconds,
		Microseconds: microseconds,
		ECUID:        bufview.TrimmedID(ecuIDBytes),
	}, nil
}
