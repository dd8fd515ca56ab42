// Copyright 2025 go-specialize Authors
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

package unroll

import (
	"fmt"
	"testing"
)

func TestBlockRunnersVisitInOrder(t *testing.T) {
	for n := 1; n <= maxBlock; n++ {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			var got []int
			blockIndex[int](n)(func(i int) { got = append(got, i) }, 100, 3)
			if len(got) != n {
				t.Fatalf("runIndex%d visited %d indices, want %d", n, len(got), n)
			}
			for k, i := range got {
				if want := 100 + 3*k; i != want {
					t.Errorf("runIndex%d visit %d = %d, want %d", n, k, i, want)
				}
			}
		})
	}
}

func TestLaneRunnersVisitInOrder(t *testing.T) {
	for n := 1; n <= maxBlock; n++ {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			var lanes, idx []int
			blockLanes[int](n)(func(lane, i int) {
				lanes = append(lanes, lane)
				idx = append(idx, i)
			}, 7, -2)
			if len(idx) != n {
				t.Fatalf("runLanes%d visited %d indices, want %d", n, len(idx), n)
			}
			for k := range idx {
				if lanes[k] != k {
					t.Errorf("runLanes%d visit %d lane = %d, want %d", n, k, lanes[k], k)
				}
				if want := 7 - 2*k; idx[k] != want {
					t.Errorf("runLanes%d visit %d index = %d, want %d", n, k, idx[k], want)
				}
			}
		})
	}
}

func TestBlockSelectorsOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, maxBlock + 1} {
		if blockIndex[int](n) != nil {
			t.Errorf("blockIndex(%d) != nil", n)
		}
		if blockLanes[int](n) != nil {
			t.Errorf("blockLanes(%d) != nil", n)
		}
	}
}

func TestTailCascadesCoverSmallTail(t *testing.T) {
	for n := 1; n <= smallTailMax; n++ {
		var count int
		tailIndex(n, func(int) { count++ }, 0, 1)
		if count != n {
			t.Errorf("tailIndex(%d) visited %d indices, want %d", n, count, n)
		}
		count = 0
		tailLanes(n, func(int, int) { count++ }, 0, 1)
		if count != n {
			t.Errorf("tailLanes(%d) visited %d indices, want %d", n, count, n)
		}
	}
}
