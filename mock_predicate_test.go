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

// Hand-written mock in the shape MockGen produces.
// Source: github.com/dlt-go/dlt (interfaces: Predicate)

package dlt

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPredicate is a mock of the Predicate interface.
type MockPredicate struct {
	ctrl     *gomock.Controller
	recorder *MockPredicateMockRecorder
}

// MockPredicateMockRecorder is the mock recorder for MockPredicate.
type MockPredicateMockRecorder struct {
	mock *MockPredicate
}

// NewMockPredicate creates a new mock instance.
func NewMockPredicate(ctrl *gomock.Controller) *MockPredicate {
	mock := &MockPredicate{ctrl: ctrl}
	mock.recorder = &MockPredicateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPredicate) EXPECT() *MockPredicateMockRecorder {
	return m.recorder
}

// Keep mocks base method.
func (m *MockPredicate) Keep(msg *Message) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Keep", msg)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Keep indicates an expected call of Keep.
func (mr *MockPredicateMockRecorder) Keep(msg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Keep", reflect.TypeOf((*MockPredicate)(nil).Keep), msg)
}
