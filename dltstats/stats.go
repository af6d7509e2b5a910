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

// Package dltstats collects counters describing a decode run: messages
// successfully produced, recoverable errors (broken down by cause),
// fatal errors, and resynchronizations, with an optional Prometheus
// exporter for long-running scan processes.
package dltstats

import "sync"

// Stats is a metric collection interface for a Reader-driven decode run.
type Stats interface {
	// IncMessagesDecoded atomically adds 1 to the decoded-message counter.
	IncMessagesDecoded()
	// IncRecoverableError atomically adds 1 to the counter for cause.
	IncRecoverableError(cause string)
	// IncFatalError atomically adds 1 to the fatal-error counter.
	IncFatalError()
	// IncResync atomically adds 1 to the resynchronization counter.
	IncResync()
	// Snapshot copies the current counter values out. The per-cause
	// recoverable-error counts are copied under their own lock, separately
	// from the other counters.
	Snapshot() Counters
	// Reset sets every counter back to 0. The per-cause recoverable-error
	// counts are reset under their own lock, separately from the other
	// counters.
	Reset()
}

// Counters is a point-in-time copy of every counter Stats tracks.
type Counters struct {
	MessagesDecoded   int64
	RecoverableErrors map[string]int64
	FatalErrors       int64
	Resyncs           int64
}

// syncMapInt64 is a mutex-guarded string-keyed counter map, the same
// shape as ptp/ptp4u/stats's per-message-type counter maps, keyed here
// by recoverable-error cause instead of by PTP message type.
type syncMapInt64 struct {
	mu sync.Mutex
	m  map[string]int64
}

func (s *syncMapInt64) inc(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]int64)
	}
	s.m[key]++
}

func (s *syncMapInt64) snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

func (s *syncMapInt64) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.m {
		s.m[k] = 0
	}
}

// memStats is an in-process, concurrency-safe Stats implementation.
type memStats struct {
	mu                sync.Mutex
	messagesDecoded   int64
	fatalErrors       int64
	resyncs           int64
	recoverableErrors syncMapInt64
}

// New returns an in-memory Stats implementation.
func New() Stats {
	return &memStats{}
}

func (s *memStats) IncMessagesDecoded() {
	s.mu.Lock()
	s.messagesDecoded++
	s.mu.Unlock()
}

func (s *memStats) IncRecoverableError(cause string) {
	s.recoverableErrors.inc(cause)
}

func (s *memStats) IncFatalError() {
	s.mu.Lock()
	s.fatalErrors++
	s.mu.Unlock()
}

func (s *memStats) IncResync() {
	s.mu.Lock()
	s.resyncs++
	s.mu.Unlock()
}

func (s *memStats) Snapshot() Counters {
	s.mu.Lock()
	c := Counters{
		MessagesDecoded: s.messagesDecoded,
		FatalErrors:     s.fatalErrors,
		Resyncs:         s.resyncs,
	}
	s.mu.Unlock()
	c.RecoverableErrors = s.recoverableErrors.snapshot()
	return c
}

func (s *memStats) Reset() {
	s.mu.Lock()
	s.messagesDecoded = 0
	s.fatalErrors = 0
	s.resyncs = 0
	s.mu.Unlock()
	s.recoverableErrors.reset()
}
