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

// Package specialize maps runtime integers (or tuples of integers) to
// precompiled specialized variants without a runtime branch chain.
//
// The admissible values for each dispatch dimension are described by a
// Domain: a finite, ordered set of integers fixed when the table is
// built. A Table holds one variant per point of the cartesian product
// of its domains; lookup flattens the per-dimension indices into one
// array offset with row-major strides. Contiguous domains resolve in
// O(1) with a single subtraction, sparse domains in O(1) when their
// values form an arithmetic progression and O(log n) otherwise.
//
// Tables are built exactly once, typically in a package-level var, and
// are immutable afterwards; concurrent readers need no synchronization.
// The builder callback receives the concrete values bound to each
// variant, so the returned closures can fix loop bounds, block shapes,
// and similar constants that the compiler then treats as invariant:
//
//	var kernels = specialize.NewTable2(newKernel,
//		specialize.Range(1, 8), specialize.Range(1, 8))
//
//	func newKernel(rows, cols int) specialize.Proc[Operands] {
//		return func(op Operands) { /* body with rows, cols fixed */ }
//	}
//
// Dispatch helpers apply one of two miss policies: the silent helpers
// return the zero Result (or do nothing for void variants) without
// invoking anything, and the strict helpers report ErrNoMatch.
//
// TupleTable covers the non-cartesian case: an explicit enumeration of
// allowed value combinations, matched in declaration order.
package specialize
