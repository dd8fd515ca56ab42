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

	"github.com/ajroetker/go-specialize/reginfo"
	"github.com/ajroetker/go-specialize/specialize"
)

// Loop is a runtime-bounded unrolled loop driver with a fixed unroll
// factor. Construction resolves the block runners (and, for large
// factors, the tail dispatch tables) once; a Loop is immutable and
// safe for concurrent use afterwards.
type Loop[T Integer] struct {
	unroll int
	block  blockFn[T]
	lanes  laneBlockFn[T]

	// Tail dispatch tables over the remainder domain [1, unroll-1].
	// nil when the generated switch cascades cover every remainder.
	tailBlock *specialize.Table1[blockFn[T]]
	tailLanes *specialize.Table1[laneBlockFn[T]]
}

// NewLoop returns a loop driver unrolled by the given factor, which
// must lie in [1, maxBlock].
func NewLoop[T Integer](unroll int) (*Loop[T], error) {
	if unroll < 1 || unroll > maxBlock {
		return nil, fmt.Errorf("unroll: factor %d outside [1, %d]", unroll, maxBlock)
	}
	l := &Loop[T]{
		unroll: unroll,
		block:  blockIndex[T](unroll),
		lanes:  blockLanes[T](unroll),
	}
	if unroll-1 > smallTailMax {
		dom := specialize.Range(1, unroll-1)
		l.tailBlock = specialize.NewTable1(func(n int) blockFn[T] {
			return blockIndex[T](n)
		}, dom)
		l.tailLanes = specialize.NewTable1(func(n int) laneBlockFn[T] {
			return blockLanes[T](n)
		}, dom)
	}
	return l, nil
}

// MustLoop is NewLoop for package-level construction; it panics if the
// factor is out of range.
func MustLoop[T Integer](unroll int) *Loop[T] {
	l, err := NewLoop[T](unroll)
	if err != nil {
		panic(err)
	}
	return l
}

// Unroll returns the loop's unroll factor.
func (l *Loop[T]) Unroll() int { return l.unroll }

// Run visits the half-open range [begin, end) by step, in order. A
// zero step visits nothing; a negative step (or, for unsigned types, a
// step above half the type's range) walks backward.
func (l *Loop[T]) Run(begin, end, step T, fn func(T)) {
	count := rangeCount(begin, end, step)
	if count == 0 {
		return
	}
	stride := step * T(l.unroll)
	i := begin
	for ; count >= l.unroll; count -= l.unroll {
		l.block(fn, i, step)
		i += stride
	}
	if count == 0 {
		return
	}
	if l.tailBlock != nil {
		if run, ok := l.tailBlock.Lookup(count); ok {
			run(fn, i, step)
		}
		return
	}
	tailIndex(count, fn, i, step)
}

// RunLanes is Run for bodies that also receive the index's lane, its
// position within the current block. Every visited index i satisfies
// lane == (i-begin)/step mod Unroll(); the final partial block restarts
// at lane 0 like the full blocks before it.
func (l *Loop[T]) RunLanes(begin, end, step T, fn func(lane int, i T)) {
	count := rangeCount(begin, end, step)
	if count == 0 {
		return
	}
	stride := step * T(l.unroll)
	i := begin
	for ; count >= l.unroll; count -= l.unroll {
		l.lanes(fn, i, step)
		i += stride
	}
	if count == 0 {
		return
	}
	if l.tailLanes != nil {
		if run, ok := l.tailLanes.Lookup(count); ok {
			run(fn, i, step)
		}
		return
	}
	tailLanes(count, fn, i, step)
}

// DefaultUnroll is the unroll factor of the package-level Dynamic
// helpers, chosen once at init from the detected vector shape. It is a
// tuning constant only and never affects which indices are visited.
var DefaultUnroll = reginfo.SuggestedUnroll()

var std = MustLoop[int](DefaultUnroll)

// Dynamic visits [begin, end) by step with the default int loop.
func Dynamic(begin, end, step int, fn func(int)) {
	std.Run(begin, end, step, fn)
}

// DynamicN visits 0, 1, ..., count-1.
func DynamicN(count int, fn func(int)) {
	std.Run(0, count, 1, fn)
}

// DynamicAuto visits the range between begin and end with a unit step
// whose direction follows the bound ordering: ascending when
// begin <= end, descending otherwise.
func DynamicAuto(begin, end int, fn func(int)) {
	if begin <= end {
		std.Run(begin, end, 1, fn)
		return
	}
	std.Run(begin, end, -1, fn)
}

// DynamicLanes is Dynamic for lane-aware bodies.
func DynamicLanes(begin, end, step int, fn func(lane, i int)) {
	std.RunLanes(begin, end, step, fn)
}
