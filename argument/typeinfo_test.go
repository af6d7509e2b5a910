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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeInfoUnsigned32(t *testing.T) {
	ti := newTypeInfo(classUnsigned | uint32(Length32))
	assert.Equal(t, Length32, ti.Length())
	assert.False(t, ti.VariableInfo())
	assert.False(t, ti.FixedPoint())
	assert.Equal(t, classUnsigned, ti.typeClass())
}

func TestTypeInfoVariableInfoModifier(t *testing.T) {
	ti := newTypeInfo(classSigned | uint32(Length16) | maskVariableInfo)
	assert.True(t, ti.VariableInfo())
}

func TestTypeInfoFixedPointModifier(t *testing.T) {
	ti := newTypeInfo(classFloat | uint32(Length32) | maskFixedPoint)
	assert.True(t, ti.FixedPoint())
}

func TestTypeInfoStringCoding(t *testing.T) {
	ti := newTypeInfo(classString | (uint32(CodingUTF8) << 15))
	assert.Equal(t, CodingUTF8, ti.StringCoding())
}
