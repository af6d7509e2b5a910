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

	"github.com/dlt-go/dlt/argument"
	"github.com/dlt-go/dlt/dlterr"
)

// messageIDSize is the width of the message_id field opening a
// non-verbose payload.
const messageIDSize = 4

// Payload is a message's body: either a self-describing stream of typed
// arguments (verbose) or an opaque blob identified by a numeric message
// ID (non-verbose).
type Payload struct {
	verbose   bool
	messageID uint32
	// data is the opaque payload bytes for a non-verbose message, or the
	// still-undecoded argument stream for a verbose one. Borrows from the
	// decode buffer.
	data    []byte
	order   binary.ByteOrder
	numArgs int
	base    int64
}

// Verbose reports whether this payload carries a typed-argument stream.
func (p Payload) Verbose() bool { return p.verbose }

// MessageID returns the non-verbose message identifier. Only meaningful
// when !Verbose().
func (p Payload) MessageID() uint32 { return p.messageID }

// Data returns the opaque non-verbose payload bytes, borrowed from the
// decode buffer. Only meaningful when !Verbose().
func (p Payload) Data() []byte { return p.data }

// Arguments returns a fresh iterator over the verbose argument stream.
// Only meaningful when Verbose(); calling it on a non-verbose payload
// yields an iterator that produces nothing.
func (p Payload) Arguments() *argument.Arguments {
	return argument.NewArguments(p.data, p.order, p.numArgs, p.base)
}

// decodePayload interprets buf, the bytes remaining in a message after
// its standard and (optional) extended headers, as either a verbose or
// non-verbose payload.
func decodePayload(buf []byte, order binary.ByteOrder, verbose bool, numArgs int, base int64) (Payload, error) {
	if verbose {
		return Payload{verbose: true, data: buf, order: order, numArgs: numArgs, base: base}, nil
	}

	if len(buf) < messageIDSize {
		return Payload{}, dlterr.NotEnoughData(messageIDSize, len(buf))
	}
	return Payload{
		verbose:   false,
		messageID: order.Uint32(buf[:messageIDSize]),
		data:      buf[messageIDSize:],
		order:     order,
	}, nil
}
