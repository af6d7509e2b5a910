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

import "github.com/dlt-go/dlt/dlterr"

// RecoverableError and FatalError are aliases of the shared error
// taxonomy in dlterr, re-exported here so callers of this package never
// need to import dlterr directly. The taxonomy lives in its own package
// because both this package and dlt/argument construct these errors, and
// argument cannot import dlt without a cycle.
type (
	RecoverableError = dlterr.Recoverable
	FatalError       = dlterr.Fatal
	OffsetError      = dlterr.OffsetError
)

// Sentinel causes, matched with errors.Is.
var (
	ErrNotEnoughData           = dlterr.ErrNotEnoughData
	ErrMissingDltPattern       = dlterr.ErrMissingDltPattern
	ErrUnsupportedArgument     = dlterr.ErrUnsupportedArgument
	ErrUnknownArgumentType     = dlterr.ErrUnknownArgumentType
	ErrUnimplementedArgument   = dlterr.ErrUnimplementedArgument
	ErrMalformedArgumentLength = dlterr.ErrMalformedArgumentLength
	ErrInvalidUTF8             = dlterr.ErrInvalidUTF8
	ErrBufferTruncated         = dlterr.ErrBufferTruncated
	ErrLengthExceedsBuffer     = dlterr.ErrLengthExceedsBuffer
)
