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

import "encoding/binary"

// byteOrder selects the binary.ByteOrder that governs everything inside
// a DLT message body - the extended header's numeric fields, the
// non-verbose message ID, and every verbose argument's type-info and
// value. This is a per-message property carried in the standard
// header's MsbFirst bit, not a property of the host machine, and must
// be threaded through every decoder that touches message-body bytes.
func byteOrder(msbFirst bool) binary.ByteOrder {
	if msbFirst {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
