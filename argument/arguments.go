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

package argument

import "encoding/binary"

// Arguments lazily decodes the typed-argument stream of a verbose
// payload. Once Next reports an error, the failing argument's length on
// the wire can no longer be determined, so every subsequent call to Next
// reports the same error without making progress: the iterator is
// fatal-sticky, even though the error it carries may itself be
// Recoverable at the message level.
type Arguments struct {
	buf    []byte
	order  binary.ByteOrder
	base   int64
	remain int
	pos    int
	err    error
}

// NewArguments returns an iterator over buf, which holds count arguments
// back to back; bytes after the last of them are never read. order
// is the message's own byte order (StandardHeader.MsbFirst). base is the
// absolute offset of buf[0], used to annotate errors.
func NewArguments(buf []byte, order binary.ByteOrder, count int, base int64) *Arguments {
	return &Arguments{buf: buf, order: order, base: base, remain: count}
}

// Next decodes the next argument. It returns ok=false once count
// arguments have been produced or once a decode error has occurred; call
// Err to distinguish clean exhaustion from failure.
func (a *Arguments) Next() (Argument, bool) {
	if a.err != nil || a.remain <= 0 {
		return Argument{}, false
	}

	arg, n, err := decode(a.buf[a.pos:], a.order, a.base+int64(a.pos))
	if err != nil {
		a.err = err
		return Argument{}, false
	}

	a.pos += n
	a.remain--
	return arg, true
}

// Err returns the error that stopped iteration, or nil if every declared
// argument was produced.
func (a *Arguments) Err() error { return a.err }

// Consumed returns how many bytes of the argument stream have been
// decoded so far.
func (a *Arguments) Consumed() int { return a.pos }
