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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadNonVerbose(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x07, 0x01, 0x02, 0x03}
	p, err := decodePayload(buf, binary.BigEndian, false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), p.MessageID())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, p.Data())
}

func TestDecodePayloadNonVerboseTooShort(t *testing.T) {
	_, err := decodePayload([]byte{0x00, 0x01}, binary.BigEndian, false, 0, 0)
	require.Error(t, err)
}

func TestDecodePayloadVerboseEmptyArguments(t *testing.T) {
	p, err := decodePayload(nil, binary.LittleEndian, true, 0, 0)
	require.NoError(t, err)
	args := p.Arguments()
	_, ok := args.Next()
	assert.False(t, ok)
	assert.NoError(t, args.Err())
}
