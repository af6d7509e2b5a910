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

func TestDecodeStorageHeader(t *testing.T) {
	raw := []byte{
		'D', 'L', 'T', 0x01,
		0x2a, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		'E', 'C', 'U', '1',
	}
	h, err := decodeStorageHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2a), h.Seconds)
	assert.Equal(t, int32(1), h.Microseconds)
	assert.Equal(t, "ECU1", h.ECUID)
	assert.Equal(t, storageHeaderSize, h.Len())
}

func TestDecodeStorageHeaderShort(t *testing.T) {
	_, err := decodeStorageHeader(make([]byte, 10))
	require.Error(t, err)
}

func TestDecodeStorageHeaderBadMagic(t *testing.T) {
	raw := make([]byte, storageHeaderSize)
	copy(raw, []byte{'X', 'L', 'T', 0x01})
	_, err := decodeStorageHeader(raw)
	require.ErrorIs(t, err, ErrMissingDltPattern)
}

func TestDecodeStorageHeaderTrimsPaddedID(t *testing.T) {
	raw := []byte{
		'D', 'L', 'T', 0x01,
		0, 0, 0, 0,
		0, 0, 0, 0,
		'E', 'C', 0, 0,
	}
	h, err := decodeStorageHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, "EC", h.ECUID)
}
