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

package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlt-go/dlt/dltstats"
	"github.com/dlt-go/dlt/internal/config"
)

func oneMessageBytes(ecuByte byte, counter byte) []byte {
	return []byte{
		'D', 'L', 'T', 0x01,
		0, 0, 0, 0,
		0, 0, 0, 0,
		'E', 'C', 'U', ecuByte,
		0x00, counter, 0x00, 0x0a,
		0x01, 0x00, 0x00, 0x00,
		0xaa, 0xbb,
	}
}

func TestRunScanCountsMessagesAcrossJunk(t *testing.T) {
	buf := append(oneMessageBytes('0', 1), []byte{0xff, 0xff, 0xff}...)
	buf = append(buf, oneMessageBytes('1', 2)...)

	stats := dltstats.New()
	var out bytes.Buffer
	err := runScan(&out, buf, nil, stats, true, config.FormatText)
	require.NoError(t, err)

	snap := stats.Snapshot()
	assert.Equal(t, int64(2), snap.MessagesDecoded)
	assert.Equal(t, int64(1), snap.Resyncs)
	assert.Contains(t, out.String(), "messages=2")
}

func TestRunScanStopsAtFirstErrorWhenNotFollowing(t *testing.T) {
	// A recoverable error followed by another valid message: with
	// followResync=false, runScan should stop right after the error
	// instead of continuing on to the second message.
	buf := append(oneMessageBytes('0', 1), []byte{0xff, 0xff, 0xff}...)
	buf = append(buf, oneMessageBytes('1', 2)...)

	stats := dltstats.New()
	var out bytes.Buffer
	err := runScan(&out, buf, nil, stats, false, config.FormatText)
	assert.Error(t, err)

	snap := stats.Snapshot()
	assert.Equal(t, int64(1), snap.MessagesDecoded)
	assert.Equal(t, int64(1), snap.RecoverableErrors["missing DLT storage header pattern"])
}

func TestRunScanReportsFatalWhenFramingIsLost(t *testing.T) {
	// Junk with no further storage-header magic: the Reader cannot
	// resynchronize at all, so this is fatal regardless of followResync.
	buf := append(oneMessageBytes('0', 1), []byte{0xff, 0xff, 0xff}...)

	stats := dltstats.New()
	var out bytes.Buffer
	err := runScan(&out, buf, nil, stats, true, config.FormatText)
	assert.Error(t, err)

	snap := stats.Snapshot()
	assert.Equal(t, int64(1), snap.MessagesDecoded)
	assert.Equal(t, int64(1), snap.FatalErrors)
	assert.Contains(t, out.String(), "FAIL")
}

func TestRunScanJSONFormatEmitsJSONSummary(t *testing.T) {
	buf := append(oneMessageBytes('0', 1), []byte{0xff, 0xff, 0xff}...)
	buf = append(buf, oneMessageBytes('1', 2)...)

	stats := dltstats.New()
	var out bytes.Buffer
	err := runScan(&out, buf, nil, stats, true, config.FormatJSON)
	require.NoError(t, err)

	var snap dltstats.Counters
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, int64(2), snap.MessagesDecoded)
	assert.Equal(t, int64(1), snap.Resyncs)
}
