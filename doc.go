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

// Package dlt decodes the Diagnostic Log and Trace (DLT) wire format, as
// standardized by AUTOSAR release R20-11, from an in-memory byte buffer
// holding a concatenated sequence of storage-header-prefixed messages.
//
// Every textual field on a decoded Message (ECU ID, application ID,
// context ID, verbose string arguments) borrows directly from the input
// buffer: the decoder never allocates on the successful-decode path and
// never mutates the buffer. Decoded values must not outlive the buffer
// they were read from.
//
// See https://www.autosar.org/fileadmin/user_upload/standards/foundation/19-11/AUTOSAR_PRS_LogAndTraceProtocol.pdf
package dlt
