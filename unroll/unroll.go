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

//go:generate go run ../cmd/unrollgen -max 32 -smalltail 16 -output zz_unroll_blocks.go

import "fmt"

// Integer is the set of index types the unrollers iterate over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// blockFn runs a generated fixed-count index runner starting at i0.
type blockFn[T Integer] func(fn func(T), i0, step T)

// laneBlockFn is blockFn for bodies that also receive the lane id.
type laneBlockFn[T Integer] func(fn func(lane int, i T), i0, step T)

// IndexVisitor is the interface form of a loop body. VisitIndex is
// called once per visited index, in iteration order.
type IndexVisitor[T Integer] interface {
	VisitIndex(i T)
}

// Visit adapts an IndexVisitor into the func form the unrollers take.
func Visit[T Integer](v IndexVisitor[T]) func(T) {
	return v.VisitIndex
}

// rangeCount returns the number of indices visited walking from begin
// toward end by step. A zero step visits nothing. For unsigned types a
// step above half the type's range is treated as a wrapped negative
// and walks backward.
func rangeCount[T Integer](begin, end, step T) int {
	if step == 0 || begin == end {
		return 0
	}
	if ^T(0) < 0 { // signed
		if step > 0 {
			if end < begin {
				return 0
			}
			d, s := uint64(end-begin), uint64(step)
			return int((d + s - 1) / s)
		}
		if end > begin {
			return 0
		}
		d, s := uint64(begin-end), uint64(-step)
		return int((d + s - 1) / s)
	}
	if step > (^T(0))>>1 { // wrapped negative
		if end > begin {
			return 0
		}
		d, s := uint64(begin-end), uint64(T(0)-step)
		return int((d + s - 1) / s)
	}
	if end < begin {
		return 0
	}
	d, s := uint64(end-begin), uint64(step)
	return int((d + s - 1) / s)
}

// Static visits the half-open range [begin, end) by step, emitting the
// body through the widest generated runner. The range shape is the
// caller's responsibility: a zero step or a step walking away from end
// over a non-empty range panics.
func Static[T Integer](begin, end, step T, fn func(T)) {
	StaticBlocks(begin, end, step, maxBlock, fn)
}

// StaticBlocks is Static with an explicit block size in [1, maxBlock].
// Full blocks run through the fixed-count runner for blockSize; the
// remainder runs through the runner sized exactly to it.
func StaticBlocks[T Integer](begin, end, step T, blockSize int, fn func(T)) {
	if blockSize < 1 || blockSize > maxBlock {
		panic(fmt.Sprintf("unroll: block size %d outside [1, %d]", blockSize, maxBlock))
	}
	if begin == end {
		return
	}
	if step == 0 {
		panic("unroll: zero step over a non-empty range")
	}
	count := rangeCount(begin, end, step)
	if count == 0 {
		panic("unroll: step walks away from the range end")
	}
	block := blockIndex[T](blockSize)
	stride := step * T(blockSize)
	i := begin
	for ; count >= blockSize; count -= blockSize {
		block(fn, i, step)
		i += stride
	}
	if count > 0 {
		blockIndex[T](count)(fn, i, step)
	}
}
