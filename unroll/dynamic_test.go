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

func TestRangeCount(t *testing.T) {
	tests := []struct {
		begin, end, step int
		want             int
	}{
		{0, 10, 1, 10},
		{0, 10, 3, 4},
		{0, 10, 0, 0},
		{0, 0, 1, 0},
		{10, 0, -1, 10},
		{10, 0, -3, 4},
		{0, 10, -1, 0},
		{10, 0, 1, 0},
		{-5, 5, 2, 5},
	}
	for _, tt := range tests {
		if got := rangeCount(tt.begin, tt.end, tt.step); got != tt.want {
			t.Errorf("rangeCount(%d, %d, %d) = %d, want %d",
				tt.begin, tt.end, tt.step, got, tt.want)
		}
	}
}

func TestRangeCountUnsignedWrapped(t *testing.T) {
	// 0xFF is -1 wrapped in uint8 arithmetic.
	if got := rangeCount(uint8(10), uint8(0), uint8(0xFF)); got != 10 {
		t.Errorf("wrapped step count = %d, want 10", got)
	}
	if got := rangeCount(uint8(10), uint8(0), uint8(0xFE)); got != 5 {
		t.Errorf("wrapped step -2 count = %d, want 5", got)
	}
	// A genuinely forward unsigned step.
	if got := rangeCount(uint8(0), uint8(10), uint8(2)); got != 5 {
		t.Errorf("forward unsigned count = %d, want 5", got)
	}
	// Backward step over a forward range visits nothing.
	if got := rangeCount(uint8(0), uint8(10), uint8(0xFF)); got != 0 {
		t.Errorf("misdirected wrapped count = %d, want 0", got)
	}
}

func TestLoopMatchesPlainLoop(t *testing.T) {
	ranges := []struct {
		begin, end, step int
	}{
		{0, 0, 1},
		{0, 1, 1},
		{5, 16, 1},
		{0, 100, 1},
		{0, 100, 7},
		{100, 0, -1},
		{50, -50, -3},
		{0, 31, 1},
		{0, 33, 1},
	}
	for _, unroll := range []int{1, 2, 3, 4, 7, 8, 16, 17, 32} {
		l := MustLoop[int](unroll)
		for _, r := range ranges {
			t.Run(fmt.Sprintf("u%d_%d_%d_%d", unroll, r.begin, r.end, r.step), func(t *testing.T) {
				var got []int
				l.Run(r.begin, r.end, r.step, func(i int) { got = append(got, i) })
				want := plainRange(r.begin, r.end, r.step)
				if !equalInts(got, want) {
					t.Errorf("Run visited %v, want %v", got, want)
				}
			})
		}
	}
}

func TestLoopZeroStep(t *testing.T) {
	l := MustLoop[int](4)
	called := false
	l.Run(0, 10, 0, func(int) { called = true })
	if called {
		t.Error("zero step invoked the body")
	}
}

func TestLoopUnsignedBackward(t *testing.T) {
	l := MustLoop[uint16](4)
	var got []uint16
	l.Run(10, 0, ^uint16(0), func(i uint16) { got = append(got, i) })
	if len(got) != 10 {
		t.Fatalf("visited %d indices, want 10", len(got))
	}
	for k, i := range got {
		if want := uint16(10 - k); i != want {
			t.Errorf("visit %d = %d, want %d", k, i, want)
		}
	}
}

func TestRunLanesSequence(t *testing.T) {
	l := MustLoop[int](4)
	var lanes, idx []int
	l.RunLanes(5, 16, 1, func(lane, i int) {
		lanes = append(lanes, lane)
		idx = append(idx, i)
	})
	wantIdx := plainRange(5, 16, 1)
	wantLanes := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2}
	if !equalInts(idx, wantIdx) {
		t.Errorf("indices %v, want %v", idx, wantIdx)
	}
	if !equalInts(lanes, wantLanes) {
		t.Errorf("lanes %v, want %v", lanes, wantLanes)
	}
}

func TestRunLanesPositionInvariant(t *testing.T) {
	for _, unroll := range []int{1, 3, 8, 20, 32} {
		l := MustLoop[int](unroll)
		pos := 0
		l.RunLanes(-7, 40, 3, func(lane, i int) {
			if want := pos % unroll; lane != want {
				t.Errorf("unroll %d position %d: lane = %d, want %d", unroll, pos, lane, want)
			}
			if want := -7 + 3*pos; i != want {
				t.Errorf("unroll %d position %d: index = %d, want %d", unroll, pos, i, want)
			}
			pos++
		})
	}
}

func TestLoopLargeUnrollUsesTailTable(t *testing.T) {
	l := MustLoop[int](32)
	if l.tailBlock == nil || l.tailLanes == nil {
		t.Fatal("unroll 32 loop has no tail dispatch tables")
	}
	// Remainder 31 exceeds the cascade bound and must resolve via the table.
	var got []int
	l.Run(0, 63, 1, func(i int) { got = append(got, i) })
	if !equalInts(got, plainRange(0, 63, 1)) {
		t.Errorf("visited %v, want 0..62", got)
	}
}

func TestLoopSmallUnrollSkipsTailTable(t *testing.T) {
	l := MustLoop[int](8)
	if l.tailBlock != nil || l.tailLanes != nil {
		t.Error("unroll 8 loop built tail dispatch tables")
	}
}

func TestNewLoopRejectsBadFactor(t *testing.T) {
	for _, u := range []int{0, -1, maxBlock + 1} {
		if _, err := NewLoop[int](u); err == nil {
			t.Errorf("NewLoop(%d) succeeded, want error", u)
		}
	}
}

func TestDefaultUnrollBounds(t *testing.T) {
	if DefaultUnroll < 4 || DefaultUnroll > 16 {
		t.Errorf("DefaultUnroll = %d, want in [4, 16]", DefaultUnroll)
	}
	if got := std.Unroll(); got != DefaultUnroll {
		t.Errorf("std.Unroll() = %d, want %d", got, DefaultUnroll)
	}
}

func TestDynamicHelpers(t *testing.T) {
	var got []int
	Dynamic(2, 11, 2, func(i int) { got = append(got, i) })
	if !equalInts(got, []int{2, 4, 6, 8, 10}) {
		t.Errorf("Dynamic visited %v", got)
	}

	got = nil
	DynamicN(5, func(i int) { got = append(got, i) })
	if !equalInts(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("DynamicN visited %v", got)
	}

	got = nil
	DynamicAuto(3, 0, func(i int) { got = append(got, i) })
	if !equalInts(got, []int{3, 2, 1}) {
		t.Errorf("DynamicAuto descending visited %v", got)
	}

	got = nil
	DynamicAuto(0, 3, func(i int) { got = append(got, i) })
	if !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("DynamicAuto ascending visited %v", got)
	}

	sum := 0
	DynamicLanes(0, 10, 1, func(lane, i int) { sum += i })
	if sum != 45 {
		t.Errorf("DynamicLanes sum = %d, want 45", sum)
	}
}

func BenchmarkLoopRun(b *testing.B) {
	l := MustLoop[int](8)
	for i := 0; i < b.N; i++ {
		var sum int
		l.Run(0, 1027, 1, func(j int) { sum += j })
		if sum == 0 {
			b.Fatal("unexpected zero sum")
		}
	}
}

func BenchmarkPlainLoopBaseline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var sum int
		for j := 0; j < 1027; j++ {
			sum += j
		}
		if sum == 0 {
			b.Fatal("unexpected zero sum")
		}
	}
}
