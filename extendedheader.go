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
	"github.com/dlt-go/dlt/dlterr"
	"github.com/dlt-go/dlt/internal/bufview"
)

// extendedHeaderSize is the fixed size of the optional extended header,
// present iff the standard header's UseExtendedHeader bit is set.
const extendedHeaderSize = 10

// MessageType is the top-level class of a message, message_info bits 1..3.
type MessageType byte

// Message type values, Table 36.
const (
	MessageTypeLog      MessageType = 0x0
	MessageTypeAppTrace MessageType = 0x1
	MessageTypeNwTrace  MessageType = 0x2
	MessageTypeControl  MessageType = 0x3
)

var messageTypeNames = map[MessageType]string{
	MessageTypeLog:      "log",
	MessageTypeAppTrace: "app_trace",
	MessageTypeNwTrace:  "nw_trace",
	MessageTypeControl:  "control",
}

func (t MessageType) String() string {
	if s, ok := messageTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// LogInfo is the type-info sub-enum for MessageTypeLog.
type LogInfo byte

// Log sub-types, Table 38.
const (
	LogFatal   LogInfo = 0x1
	LogError   LogInfo = 0x2
	LogWarn    LogInfo = 0x3
	LogInfoLvl LogInfo = 0x4
	LogDebug   LogInfo = 0x5
	LogVerbose LogInfo = 0x6
)

var logInfoNames = map[LogInfo]string{
	LogFatal:   "fatal",
	LogError:   "error",
	LogWarn:    "warn",
	LogInfoLvl: "info",
	LogDebug:   "debug",
	LogVerbose: "verbose",
}

func (l LogInfo) String() string {
	if s, ok := logInfoNames[l]; ok {
		return s
	}
	return "unknown"
}

// TraceInfo is the type-info sub-enum for MessageTypeAppTrace.
type TraceInfo byte

// AppTrace sub-types, Table 39.
const (
	TraceVariable    TraceInfo = 0x1
	TraceFunctionIn  TraceInfo = 0x2
	TraceFunctionOut TraceInfo = 0x3
	TraceState       TraceInfo = 0x4
	TraceVfb         TraceInfo = 0x5
)

var traceInfoNames = map[TraceInfo]string{
	TraceVariable:    "variable",
	TraceFunctionIn:  "func_in",
	TraceFunctionOut: "func_out",
	TraceState:       "state",
	TraceVfb:         "vfb",
}

func (t TraceInfo) String() string {
	if s, ok := traceInfoNames[t]; ok {
		return s
	}
	return "unknown"
}

// BusInfo is the type-info sub-enum for MessageTypeNwTrace.
type BusInfo byte

// NwTrace sub-types, Table 40. User-defined bus IDs above SomeIP are a
// Non-goal.
const (
	BusIpc      BusInfo = 0x1
	BusCan      BusInfo = 0x2
	BusFlexray  BusInfo = 0x3
	BusMost     BusInfo = 0x4
	BusEthernet BusInfo = 0x5
	BusSomeIP   BusInfo = 0x6
)

var busInfoNames = map[BusInfo]string{
	BusIpc:      "ipc",
	BusCan:      "can",
	BusFlexray:  "flexray",
	BusMost:     "most",
	BusEthernet: "ethernet",
	BusSomeIP:   "some_ip",
}

func (b BusInfo) String() string {
	if s, ok := busInfoNames[b]; ok {
		return s
	}
	return "unknown"
}

// ControlInfo is the type-info sub-enum for MessageTypeControl.
type ControlInfo byte

// Control sub-types, Table 41.
const (
	ControlRequest  ControlInfo = 0x1
	ControlResponse ControlInfo = 0x2
)

var controlInfoNames = map[ControlInfo]string{
	ControlRequest:  "request",
	ControlResponse: "response",
}

func (c ControlInfo) String() string {
	if s, ok := controlInfoNames[c]; ok {
		return s
	}
	return "unknown"
}

// TypeInfo is the decoded (message_type, sub-type) pair from message_info
// bits 1..7. Exactly one of the Log/Trace/Bus/Control fields is
// meaningful, selected by MessageType.
type TypeInfo struct {
	MessageType MessageType
	Log         LogInfo
	Trace       TraceInfo
	Bus         BusInfo
	Control     ControlInfo
}

func (ti TypeInfo) String() string {
	switch ti.MessageType {
	case MessageTypeLog:
		return "log " + ti.Log.String()
	case MessageTypeAppTrace:
		return "app_trace " + ti.Trace.String()
	case MessageTypeNwTrace:
		return "nw_trace " + ti.Bus.String()
	case MessageTypeControl:
		return "control " + ti.Control.String()
	default:
		return "unknown"
	}
}

// ExtendedHeader is the optional 10-byte descriptor of message class,
// argument count, and the application/context that produced the message.
type ExtendedHeader struct {
	messageInfo byte
	// NumberOfArguments is the count of verbose arguments in the payload
	// (meaningless for non-verbose payloads).
	NumberOfArguments byte
	// ApplicationID and ContextID borrow from the decode buffer.
	ApplicationID string
	ContextID     string
}

// Len is the number of bytes an ExtendedHeader always occupies on the wire.
func (ExtendedHeader) Len() int { return extendedHeaderSize }

// Verbose reports whether the payload is a self-describing stream of
// typed arguments (true) or an opaque, message-ID-prefixed blob (false).
func (h ExtendedHeader) Verbose() bool { return h.messageInfo&0b0000_0001 != 0 }

// MessageType extracts the message class from message_info bits 1..3.
func (h ExtendedHeader) MessageType() MessageType {
	return MessageType((h.messageInfo & 0b0000_1110) >> 1)
}

// TypeInfo decodes the full (message_type, sub-type) pair from
// message_info bits 1..7.
func (h ExtendedHeader) TypeInfo() TypeInfo {
	sub := (h.messageInfo & 0b1111_0000) >> 4
	mt := h.MessageType()
	ti := TypeInfo{MessageType: mt}
	switch mt {
	case MessageTypeLog:
		ti.Log = LogInfo(sub)
	case MessageTypeAppTrace:
		ti.Trace = TraceInfo(sub)
	case MessageTypeNwTrace:
		ti.Bus = BusInfo(sub)
	case MessageTypeControl:
		ti.Control = ControlInfo(sub)
	}
	return ti
}

// decodeExtendedHeader parses an ExtendedHeader from the start of buf.
func decodeExtendedHeader(buf []byte) (ExtendedHeader, error) {
	if len(buf) < extendedHeaderSize {
		return ExtendedHeader{}, dlterr.NotEnoughData(extendedHeaderSize, len(buf))
	}

	appIDBytes := buf[2:6]
	ctxIDBytes := buf[6:10]
	if !bufview.ValidateUTF8(appIDBytes) || !bufview.ValidateUTF8(ctxIDBytes) {
		return ExtendedHeader{}, dlterr.ErrInvalidUTF8
	}

	return ExtendedHeader{
		messageInfo:       buf[0],
		NumberOfArguments: buf[1],
		ApplicationID:     bufview.TrimmedID(appIDBytes),
		ContextID:         bufview.TrimmedID(ctxIDBytes),
	}, nil
}
