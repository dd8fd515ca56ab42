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

func plainRange(begin, end, step int) []int {
	var out []int
	if step > 0 {
		for i := begin; i < end; i += step {
			out = append(out, i)
		}
	} else if step < 0 {
		for i := begin; i > end; i += step {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStaticVisitsInOrder(t *testing.T) {
	tests := []struct {
		begin, end, step int
	}{
		{0, 10, 1},
		{0, 64, 1},
		{0, 65, 1},
		{3, 48, 5},
		{10, 0, -1},
		{100, 1, -7},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d_%d", tt.begin, tt.end, tt.step), func(t *testing.T) {
			var got []int
			Static(tt.begin, tt.end, tt.step, func(i int) { got = append(got, i) })
			want := plainRange(tt.begin, tt.end, tt.step)
			if !equalInts(got, want) {
				t.Errorf("Static visited %v, want %v", got, want)
			}
		})
	}
}

func TestStaticEmptyRange(t *testing.T) {
	called := false
	Static(5, 5, 1, func(int) { called = true })
	if called {
		t.Error("Static over empty range invoked the body")
	}
}

func TestStaticBlocksAllBlockSizes(t *testing.T) {
	want := plainRange(0, 53, 1)
	for bs := 1; bs <= maxBlock; bs++ {
		var got []int
		StaticBlocks(0, 53, 1, bs, func(i int) { got = append(got, i) })
		if !equalInts(got, want) {
			t.Errorf("StaticBlocks blockSize=%d visited %v, want %v", bs, got, want)
		}
	}
}

func TestStaticBlocksUint(t *testing.T) {
	var got []uint
	StaticBlocks(uint(2), uint(20), uint(3), 4, func(i uint) { got = append(got, i) })
	want := []uint{2, 5, 8, 11, 14, 17}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("visit %d = %d, want %d", k, got[k], want[k])
		}
	}
}

func TestStaticPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"zero step", func() { Static(0, 10, 0, func(int) {}) }},
		{"wrong direction", func() { Static(0, 10, -1, func(int) {}) }},
		{"block size zero", func() { StaticBlocks(0, 10, 1, 0, func(int) {}) }},
		{"block size too large", func() { StaticBlocks(0, 10, 1, maxBlock+1, func(int) {}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run()
		})
	}
}

type collectVisitor struct {
	seen []int32
}

func (c *collectVisitor) VisitIndex(i int32) { c.seen = append(c.seen, i) }

func TestVisitAdapter(t *testing.T) {
	v := &collectVisitor{}
	Static(int32(0), int32(5), int32(1), Visit[int32](v))
	if len(v.seen) != 5 {
		t.Fatalf("visitor saw %d indices, want 5", len(v.seen))
	}
	for k, i := range v.seen {
		if i != int32(k) {
			t.Errorf("visit %d = %d, want %d", k, i, k)
		}
	}
}

func BenchmarkStaticSum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var sum int
		Static(0, 1024, 1, func(j int) { sum += j })
		if sum == 0 {
			b.Fatal("unexpected zero sum")
		}
	}
}
