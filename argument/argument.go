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

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/dlt-go/dlt/dlterr"
	"github.com/dlt-go/dlt/internal/bufview"
)

// lengthPrefixSize is the width of the length prefix carried by String and
// Raw arguments, ahead of their data.
const lengthPrefixSize = 2

// typeInfoSize is the width of the type_info word that opens every argument.
const typeInfoSize = 4

// Argument is one decoded element of a verbose payload: a type-info word
// plus the value it describes.
type Argument struct {
	TypeInfo TypeInfo
	Value    Value
}

// byteWidth returns how many bytes a numeric TypeLength occupies, or false
// if l is not one of the defined widths.
func byteWidth(l TypeLength) (int, bool) {
	switch l {
	case Length8:
		return 1, true
	case Length16:
		return 2, true
	case Length32:
		return 4, true
	case Length64:
		return 8, true
	case Length128:
		return 16, true
	default:
		return 0, false
	}
}

// requireWidth reports whether rest holds at least width bytes, returning
// a Recoverable error scoped to offset otherwise. The type parameter
// carries no runtime behavior; it documents, at each call site, which of
// the Signed/Unsigned/Float decode paths is asking, the same bounds check
// each of them would otherwise repeat inline.
func requireWidth[T constraints.Signed | constraints.Unsigned | constraints.Float](rest []byte, width int, offset int64) error {
	if len(rest) < width {
		return &dlterr.Recoverable{Err: dlterr.NotEnoughData(width, len(rest)), Off: offset}
	}
	return nil
}

// decode parses one argument from the start of buf and returns it along
// with the number of bytes consumed. A returned error always means zero
// bytes of the value portion could be accounted for, so callers cannot
// assume where the next argument would start.
func decode(buf []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	if len(buf) < typeInfoSize {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.NotEnoughData(typeInfoSize, len(buf)), Off: offset}
	}
	raw := order.Uint32(buf[:typeInfoSize])
	ti := newTypeInfo(raw)
	rest := buf[typeInfoSize:]

	// VariableInfo and FixedPoint are checked independently of the type
	// class: this revision decodes neither, and since either modifier
	// changes the value's layout, the length of what follows is unknown.
	if ti.VariableInfo() || ti.FixedPoint() {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnsupportedArgument, Off: offset}
	}

	switch ti.typeClass() {
	case classBool:
		return decodeBool(ti, rest, offset)
	case classSigned:
		return decodeSigned(ti, rest, order, offset)
	case classUnsigned:
		return decodeUnsigned(ti, rest, order, offset)
	case classFloat:
		return decodeFloat(ti, rest, order, offset)
	case classString:
		return decodeString(ti, rest, order, offset)
	case classRaw:
		return decodeRaw(ti, rest, order, offset)
	case classArray, classStruct:
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnimplementedArgument, Off: offset}
	default:
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnknownArgumentType, Off: offset}
	}
}

func decodeBool(ti TypeInfo, rest []byte, offset int64) (Argument, int, error) {
	if len(rest) < 1 {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.NotEnoughData(1, len(rest)), Off: offset}
	}
	return Argument{
		TypeInfo: ti,
		Value:    Value{kind: KindBool, boolean: rest[0] != 0},
	}, typeInfoSize + 1, nil
}

func decodeSigned(ti TypeInfo, rest []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	width, ok := byteWidth(ti.Length())
	if !ok {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnknownArgumentType, Off: offset}
	}
	if err := requireWidth[int64](rest, width, offset); err != nil {
		return Argument{}, 0, err
	}

	var v Value
	switch ti.Length() {
	case Length8:
		v = Value{kind: KindI8, i64: int64(int8(rest[0]))}
	case Length16:
		v = Value{kind: KindI16, i64: int64(int16(order.Uint16(rest[:2])))}
	case Length32:
		v = Value{kind: KindI32, i64: int64(int32(order.Uint32(rest[:4])))}
	case Length64:
		v = Value{kind: KindI64, i64: int64(order.Uint64(rest[:8]))}
	case Length128:
		hi, lo := readUint128Halves(rest[:16], order)
		v = Value{kind: KindI128, i128: I128{High: int64(hi), Low: lo}}
	}
	return Argument{TypeInfo: ti, Value: v}, typeInfoSize + width, nil
}

func decodeUnsigned(ti TypeInfo, rest []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	width, ok := byteWidth(ti.Length())
	if !ok {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnknownArgumentType, Off: offset}
	}
	if err := requireWidth[uint64](rest, width, offset); err != nil {
		return Argument{}, 0, err
	}

	var v Value
	switch ti.Length() {
	case Length8:
		v = Value{kind: KindU8, u64: uint64(rest[0])}
	case Length16:
		v = Value{kind: KindU16, u64: uint64(order.Uint16(rest[:2]))}
	case Length32:
		v = Value{kind: KindU32, u64: uint64(order.Uint32(rest[:4]))}
	case Length64:
		v = Value{kind: KindU64, u64: order.Uint64(rest[:8])}
	case Length128:
		hi, lo := readUint128Halves(rest[:16], order)
		v = Value{kind: KindU128, u128: U128{High: hi, Low: lo}}
	}
	return Argument{TypeInfo: ti, Value: v}, typeInfoSize + width, nil
}

// readUint128Halves splits a 16-byte field into (high, low) 64-bit halves,
// honoring the message's own byte order for the placement of the halves
// as well as each half's internal encoding.
func readUint128Halves(b []byte, order binary.ByteOrder) (hi, lo uint64) {
	if order == binary.BigEndian {
		return order.Uint64(b[0:8]), order.Uint64(b[8:16])
	}
	return order.Uint64(b[8:16]), order.Uint64(b[0:8])
}

func decodeFloat(ti TypeInfo, rest []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	width, ok := byteWidth(ti.Length())
	if !ok {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnknownArgumentType, Off: offset}
	}
	switch ti.Length() {
	case Length32:
		if err := requireWidth[float32](rest, width, offset); err != nil {
			return Argument{}, 0, err
		}
		f := math.Float32frombits(order.Uint32(rest[:4]))
		return Argument{TypeInfo: ti, Value: Value{kind: KindF32, f32: f}}, typeInfoSize + width, nil
	case Length64:
		if err := requireWidth[float64](rest, width, offset); err != nil {
			return Argument{}, 0, err
		}
		f := math.Float64frombits(order.Uint64(rest[:8]))
		return Argument{TypeInfo: ti, Value: Value{kind: KindF64, f64: f}}, typeInfoSize + width, nil
	default:
		// 16-bit half-precision and 128-bit quad-precision floats are not
		// decoded in this revision.
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrUnsupportedArgument, Off: offset}
	}
}

func decodeString(ti TypeInfo, rest []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	data, n, err := readLengthPrefixed(rest, order, offset)
	if err != nil {
		return Argument{}, 0, err
	}
	if !bufview.ValidateUTF8(data) {
		return Argument{}, 0, &dlterr.Recoverable{Err: dlterr.ErrInvalidUTF8, Off: offset}
	}
	s := bufview.String(data)
	// Strings on the wire are NUL-terminated; trim the trailing NUL that
	// the length prefix includes.
	if len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return Argument{
		TypeInfo: ti,
		Value:    Value{kind: KindString, str: s},
	}, typeInfoSize + n, nil
}

func decodeRaw(ti TypeInfo, rest []byte, order binary.ByteOrder, offset int64) (Argument, int, error) {
	data, n, err := readLengthPrefixed(rest, order, offset)
	if err != nil {
		return Argument{}, 0, err
	}
	return Argument{
		TypeInfo: ti,
		Value:    Value{kind: KindRaw, raw: data},
	}, typeInfoSize + n, nil
}

// readLengthPrefixed reads a 16-bit length followed by that many data
// bytes, returning the data slice (borrowed from rest) and the total
// bytes consumed including the prefix.
func readLengthPrefixed(rest []byte, order binary.ByteOrder, offset int64) ([]byte, int, error) {
	if len(rest) < lengthPrefixSize {
		return nil, 0, &dlterr.Recoverable{Err: dlterr.NotEnoughData(lengthPrefixSize, len(rest)), Off: offset}
	}
	length := int(order.Uint16(rest[:lengthPrefixSize]))
	body := rest[lengthPrefixSize:]
	if len(body) < length {
		return nil, 0, &dlterr.Recoverable{Err: dlterr.ErrMalformedArgumentLength, Off: offset}
	}
	return body[:length], lengthPrefixSize + length, nil
}
