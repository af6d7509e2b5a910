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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStandardHeaderMinimal(t *testing.T) {
	raw := []byte{0b0000_0000, 0x05, 0x00, 0x04}
	h, err := decodeStandardHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), h.MessageCounter)
	assert.Equal(t, uint16(4), h.Length)
	assert.False(t, h.UseExtendedHeader())
	assert.False(t, h.MsbFirst())
	assert.False(t, h.HasECUID())
	assert.Equal(t, standardHeaderMinLength, h.Len())
}

func TestDecodeStandardHeaderWithOptionals(t *testing.T) {
	raw := []byte{
		maskUseExtendedHeader | maskMsbFirst | maskWithEcuID | maskWithSessionID | maskWithTimestamp,
		0x01,
		0x00, 0x1c,
		'E', 'C', 'U', '2',
		0x00, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x03, 0xe8,
	}
	h, err := decodeStandardHeader(raw)
	require.NoError(t, err)
	assert.True(t, h.UseExtendedHeader())
	assert.True(t, h.MsbFirst())
	assert.Equal(t, "ECU2", h.ECUID)
	assert.Equal(t, uint32(7), h.SessionID)
	assert.True(t, h.HasTimestamp())
	assert.Equal(t, uint32(1000), h.Timestamp)
	assert.Equal(t, standardHeaderMinLength+12, h.Len())
}

func TestDecodeStandardHeaderVersion(t *testing.T) {
	raw := []byte{0b0010_0000, 0x00, 0x00, 0x04}
	h, err := decodeStandardHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(1), h.Version())
}

func TestDecodeStandardHeaderTruncatedOptional(t *testing.T) {
	raw := []byte{maskWithEcuID, 0x00, 0x00, 0x08, 'E', 'C'}
	_, err := decodeStandardHeader(raw)
	require.Error(t, err)
}
