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

// Package unroll provides manually unrolled loop drivers.
//
// The package visits half-open integer ranges through generated
// fixed-count runners (see zz_unroll_blocks.go) whose bodies carry one
// index variable per position, giving the compiler independent chains
// to schedule instead of a single loop-carried counter.
//
// Static and StaticBlocks cover ranges whose shape the caller controls
// and treat a zero or misdirected step as a programming error. Loop and
// the Dynamic helpers accept arbitrary runtime bounds: a zero step
// visits nothing, a negative (or, for unsigned types, wrapped) step
// walks backward, and the remainder after the full blocks runs through
// a tail sized exactly to what is left. Remainders above smallTailMax
// are resolved through a specialize dispatch table built once per Loop.
//
// The lane-aware variants report each index's position within its
// block, which is the natural accumulator id when splitting a
// reduction across independent partial sums:
//
//	sums := make([]float64, unroll.DefaultUnroll)
//	unroll.DynamicLanes(0, len(xs), 1, func(lane, i int) {
//		sums[lane] += xs[i]
//	})
package unroll
