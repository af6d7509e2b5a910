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

import "fmt"

// Kind discriminates the Value tagged union. Values are naturally a
// closed sum type here: a discriminant plus accessor methods, never an
// inheritance hierarchy, since the set of variants is fixed by the wire
// format and every consumer dispatches on the tag.
type Kind byte

// Value kinds.
const (
	KindBool Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
	KindString
	KindRaw
)

var kindNames = [...]string{
	KindBool: "bool", KindU8: "u8", KindU16: "u16", KindU32: "u32", KindU64: "u64", KindU128: "u128",
	KindI8: "i8", KindI16: "i16", KindI32: "i32", KindI64: "i64", KindI128: "i128",
	KindF32: "f32", KindF64: "f64", KindString: "string", KindRaw: "raw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// U128 is a 128-bit unsigned integer, stored as two 64-bit halves
// (High is the more significant half) since Go has no native uint128.
type U128 struct {
	High, Low uint64
}

// I128 is a 128-bit signed integer, stored as a 128-bit two's-complement
// pattern split across two 64-bit halves (High is the more significant,
// sign-carrying half).
type I128 struct {
	High int64
	Low  uint64
}

// Value is one self-described datum decoded from a verbose argument.
// Exactly one accessor is meaningful, selected by Kind.
type Value struct {
	kind Kind

	boolean bool
	u64     uint64
	i64     int64
	u128    U128
	i128    I128
	f32     float32
	f64     float64
	str     string
	raw     []byte
}

// Kind reports which accessor is meaningful.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean value; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.boolean }

// Uint returns the unsigned integer value widened to uint64; only
// meaningful for KindU8/U16/U32/U64.
func (v Value) Uint() uint64 { return v.u64 }

// Int returns the signed integer value widened to int64; only meaningful
// for KindI8/I16/I32/I64.
func (v Value) Int() int64 { return v.i64 }

// Uint128 returns the 128-bit unsigned value; only meaningful for KindU128.
func (v Value) Uint128() U128 { return v.u128 }

// Int128 returns the 128-bit signed value; only meaningful for KindI128.
func (v Value) Int128() I128 { return v.i128 }

// Float32 returns the value; only meaningful for KindF32.
func (v Value) Float32() float32 { return v.f32 }

// Float64 returns the value; only meaningful for KindF64.
func (v Value) Float64() float64 { return v.f64 }

// String returns the string value, borrowed from the decode buffer with
// its trailing NUL trimmed; only meaningful for KindString.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	default:
		return fmt.Sprintf("%v", v.debugValue())
	}
}

// Raw returns the opaque byte slice, borrowed from the decode buffer;
// only meaningful for KindRaw.
func (v Value) Raw() []byte { return v.raw }

func (v Value) debugValue() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindU8, KindU16, KindU32, KindU64:
		return v.u64
	case KindI8, KindI16, KindI32, KindI64:
		return v.i64
	case KindU128:
		return v.u128
	case KindI128:
		return v.i128
	case KindF32:
		return v.f32
	case KindF64:
		return v.f64
	case KindRaw:
		return v.raw
	default:
		return nil
	}
}
