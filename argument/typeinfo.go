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

// Package argument decodes the self-describing, typed-argument stream
// that makes up a verbose DLT payload: a 32-bit type-info word precedes
// every argument's value and governs how many bytes follow and how to
// interpret them.
package argument

// type_info bit masks, AUTOSAR PRS_LogAndTraceProtocol §7.7.
const (
	maskTypeLength   uint32 = 0x0000000F
	maskTypeClass    uint32 = 0x000067F0
	maskVariableInfo uint32 = 0x00000800
	maskFixedPoint   uint32 = 0x00001000
	maskStringCoding uint32 = 0x00038000
)

// typeClass values, mutually exclusive once masked with maskTypeClass.
const (
	classBool     uint32 = 0x010
	classSigned   uint32 = 0x020
	classUnsigned uint32 = 0x040
	classFloat    uint32 = 0x080
	classArray    uint32 = 0x100
	classString   uint32 = 0x200
	classRaw      uint32 = 0x400
	classStruct   uint32 = 0x4000
)

// TypeLength is the numeric width selector in type_info bits 0..3.
type TypeLength byte

// Type length values, each meaningful only for numeric (Bool/Signed/
// Unsigned/Float) type classes.
const (
	Length8   TypeLength = 1
	Length16  TypeLength = 2
	Length32  TypeLength = 3
	Length64  TypeLength = 4
	Length128 TypeLength = 5
)

// StringCoding is the sub-enum type_info bits 15..17 select for String
// arguments.
type StringCoding byte

// String encodings, per the wire format's StringCoding mask.
const (
	CodingASCII StringCoding = 0
	CodingUTF8  StringCoding = 1
)

// TypeInfo is the decoded 32-bit type-info word governing one verbose
// argument's layout.
type TypeInfo struct {
	raw uint32
}

func newTypeInfo(raw uint32) TypeInfo { return TypeInfo{raw: raw} }

// Raw returns the undecoded 32-bit word, for diagnostics.
func (t TypeInfo) Raw() uint32 { return t.raw }

// Length is the numeric width selector (bits 0..3).
func (t TypeInfo) Length() TypeLength { return TypeLength(t.raw & maskTypeLength) }

// VariableInfo reports whether the VariableInfo modifier bit is set.
// Names/units carried by this modifier are not decoded in this revision
// (spec.md §1 Non-goals); its presence is a recoverable decode error.
func (t TypeInfo) VariableInfo() bool { return t.raw&maskVariableInfo != 0 }

// FixedPoint reports whether the FixedPoint modifier bit is set.
// Fixed-point numeric arguments are not decoded in this revision
// (spec.md §1 Non-goals); its presence is a recoverable decode error.
func (t TypeInfo) FixedPoint() bool { return t.raw&maskFixedPoint != 0 }

// StringCoding extracts the string-coding sub-enum (meaningful only for
// String arguments).
func (t TypeInfo) StringCoding() StringCoding {
	return StringCoding((t.raw & maskStringCoding) >> 15)
}

// typeClass is the masked-down type-class candidate, compared against
// the classXxx constants above. A value with no matching constant means
// "unknown type class".
func (t TypeInfo) typeClass() uint32 { return t.raw & maskTypeClass }
