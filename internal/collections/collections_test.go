// Copyright 2026 The GoCheck Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestFilterSlice(t *testing.T) {
	got := FilterSlice([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestFilterMapSlice(t *testing.T) {
	got := FilterMapSlice([]int{1, -1, 2}, func(x int) (int, bool) {
		if x < 0 {
			return 0, false
		}
		return x * 2, true
	})
	assert.Equal(t, []int{2, 4}, got)
}

func TestSet(t *testing.T) {
	s := SetOf("CHECK", "CHECK-NEXT")
	assert.True(t, s.Contains("CHECK"))
	assert.False(t, s.Contains("CHECK-NOT"))
	s.Add("CHECK-NOT")
	assert.True(t, s.Contains("CHECK-NOT"))
}
