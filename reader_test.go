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
	"errors"
	"io"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secondMessageBytes() []byte {
	b := nonVerboseMessageBytes()
	b[15] = '2'  // ECU id last byte: "ECU0" -> "ECU2"
	b[17] = 0x02 // msg_counter
	return b
}

func TestReaderDecodesBackToBackMessages(t *testing.T) {
	buf := append(nonVerboseMessageBytes(), secondMessageBytes()...)
	r := NewReader(buf)

	m1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU0", m1.ECUID())

	m2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU2", m2.ECUID())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderResyncsPastJunkViaMagicRescan(t *testing.T) {
	junk := []byte{0x00, 0x11, 0x22}
	buf := append(append(nonVerboseMessageBytes(), junk...), secondMessageBytes()...)
	r := NewReader(buf)

	m1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU0", m1.ECUID())

	_, err = r.Next()
	var recoverable *RecoverableError
	require.ErrorAs(t, err, &recoverable)
	assert.Equal(t, int64(len(junk)), recoverable.SkipBytes)

	m2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU2", m2.ECUID())
}

func TestReaderSkipsByDeclaredLengthWhenTrustworthy(t *testing.T) {
	// Corrupt the extended header's application ID so it fails UTF-8
	// validation, but leave the standard header's length field intact:
	// the Reader should skip straight to the next message rather than
	// rescanning for the magic pattern.
	buf := verboseMessageBytes()
	buf[22] = 0xff // first byte of the ApplicationID field
	buf = append(buf, secondMessageBytes()...)

	r := NewReader(buf)
	_, err := r.Next()
	var recoverable *RecoverableError
	require.ErrorAs(t, err, &recoverable)
	assert.Equal(t, int64(38), recoverable.SkipBytes)

	m2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU2", m2.ECUID())
}

func TestReaderEmptyBufferIsImmediateEOF(t *testing.T) {
	r := NewReader(nil)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderRemaining(t *testing.T) {
	buf := append(nonVerboseMessageBytes(), secondMessageBytes()...)
	r := NewReader(buf)
	assert.GreaterOrEqual(t, r.Remaining(), 1)
	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderFatalWhenMagicNeverFoundAgain(t *testing.T) {
	junk := []byte{0x00, 0x11, 0x22}
	buf := append(nonVerboseMessageBytes(), junk...)
	r := NewReader(buf)

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)

	// Fatal is sticky: every later call reports the same error without
	// re-examining the buffer.
	_, err2 := r.Next()
	assert.Same(t, fatal, errorAsFatal(t, err2))
}

func errorAsFatal(t *testing.T, err error) *FatalError {
	t.Helper()
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	return fatal
}

func TestReaderFatalWhenBufferIsJustMagic(t *testing.T) {
	r := NewReader(dltPattern[:])
	_, err := r.Next()
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
}

func TestFilteredUsesMockPredicate(t *testing.T) {
	buf := append(nonVerboseMessageBytes(), secondMessageBytes()...)
	r := NewReader(buf)

	ctrl := gomock.NewController(t)
	pred := NewMockPredicate(ctrl)
	pred.EXPECT().Keep(gomock.Any()).DoAndReturn(func(m *Message) bool {
		return m.ECUID() == "ECU2"
	}).Times(2)

	f := NewFiltered(r, pred)

	msg, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU2", msg.ECUID())

	_, err = f.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestFilteredSkipsRecoverableAndRejected(t *testing.T) {
	junk := []byte{0x00, 0x11, 0x22}
	buf := append(append(nonVerboseMessageBytes(), junk...), secondMessageBytes()...)
	r := NewReader(buf)
	pred := PredicateFunc(func(m *Message) bool { return m.ECUID() == "ECU2" })
	f := NewFiltered(r, pred)

	msg, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, "ECU2", msg.ECUID())

	_, err = f.Next()
	assert.True(t, errors.Is(err, io.EOF))
}
