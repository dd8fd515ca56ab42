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

package specialize

import "fmt"

// rowMajorStrides returns strides[i] = product of sizes[i+1:], so that
// flat = sum(index[i] * strides[i]) addresses a row-major table.
func rowMajorStrides(dims []*Domain) []int {
	strides := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i].Size()
	}
	return strides
}

func tableSize(dims []*Domain) int {
	total := 1
	for _, d := range dims {
		total *= d.Size()
	}
	return total
}

// b2u turns a bounds-check result into a foldable flag without a
// per-dimension branch (compiles to a flag materialization).
func b2u(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// Table1 holds one variant per value of a single domain.
type Table1[F any] struct {
	domain  *Domain
	entries []F
}

// NewTable1 builds the table, invoking build exactly once per domain
// value with the concrete value bound to that entry.
func NewTable1[F any](build func(v int) F, d *Domain) *Table1[F] {
	entries := make([]F, d.Size())
	for i := range entries {
		entries[i] = build(d.At(i))
	}
	return &Table1[F]{domain: d, entries: entries}
}

// Lookup returns the variant bound to v, or ok=false when v lies
// outside the domain.
func (t *Table1[F]) Lookup(v int) (F, bool) {
	if i, ok := t.domain.Find(v); ok {
		return t.entries[i], true
	}
	var zero F
	return zero, false
}

// Domain returns the table's value domain.
func (t *Table1[F]) Domain() *Domain { return t.domain }

// Table2 holds one variant per point of the cartesian product of two
// domains. The two-dimensional case is common enough (tile shapes,
// width x height) to warrant a lookup with no per-call slice.
type Table2[F any] struct {
	d0, d1        *Domain
	stride0       int
	allContiguous bool
	entries       []F
}

// NewTable2 builds the table in row-major order: the second dimension
// varies fastest, matching rowMajorStrides.
func NewTable2[F any](build func(v0, v1 int) F, d0, d1 *Domain) *Table2[F] {
	t := &Table2[F]{
		d0:            d0,
		d1:            d1,
		stride0:       d1.Size(),
		allContiguous: d0.Contiguous() && d1.Contiguous(),
		entries:       make([]F, d0.Size()*d1.Size()),
	}
	flat := 0
	for i := 0; i < d0.Size(); i++ {
		for j := 0; j < d1.Size(); j++ {
			t.entries[flat] = build(d0.At(i), d1.At(j))
			flat++
		}
	}
	return t
}

// Lookup resolves both dimensions and returns the variant at the
// flattened index. With two contiguous domains both offsets are
// computed unconditionally and the out-of-bounds flags are OR-folded,
// leaving a single branch on the combined flag.
func (t *Table2[F]) Lookup(v0, v1 int) (F, bool) {
	var zero F
	if t.allContiguous {
		off0 := contiguousOffset(t.d0, v0)
		off1 := contiguousOffset(t.d1, v1)
		oob := b2u(off0 >= uint(t.d0.Size())) | b2u(off1 >= uint(t.d1.Size()))
		if oob == 0 {
			return t.entries[int(off0)*t.stride0+int(off1)], true
		}
		return zero, false
	}
	i0, ok0 := t.d0.Find(v0)
	i1, ok1 := t.d1.Find(v1)
	if ok0 && ok1 {
		return t.entries[i0*t.stride0+i1], true
	}
	return zero, false
}

func contiguousOffset(d *Domain, v int) uint {
	if d.ascending {
		return uint(v - d.first)
	}
	return uint(d.first - v)
}

// Table holds one variant per point of the cartesian product of N
// domains, addressed through row-major strides.
type Table[F any] struct {
	dims          []*Domain
	strides       []int
	allContiguous bool
	entries       []F
}

// NewTable builds the N-dimensional table. build receives the concrete
// value combination for each entry; the slice is reused across calls
// and must not be retained.
func NewTable[F any](build func(vals []int) F, dims ...*Domain) *Table[F] {
	if len(dims) == 0 {
		panic("specialize: table requires at least one domain")
	}
	t := &Table[F]{
		dims:    append([]*Domain(nil), dims...),
		strides: rowMajorStrides(dims),
		entries: make([]F, tableSize(dims)),
	}
	t.allContiguous = true
	for _, d := range dims {
		t.allContiguous = t.allContiguous && d.Contiguous()
	}

	vals := make([]int, len(dims))
	for flat := range t.entries {
		for k, d := range t.dims {
			vals[k] = d.At(flat / t.strides[k] % d.Size())
		}
		t.entries[flat] = build(vals)
	}
	return t
}

// Lookup resolves every dimension and returns the variant at the
// flattened index. The path is fixed by the domain shapes at build
// time: all-contiguous tables fold per-dimension bounds flags with a
// bitwise OR and branch once; mixed tables run every lookup, AND-fold
// the hits, and accumulate the flat index only on a full match.
//
// Lookup panics when the number of values differs from the table's
// dimensionality; a mismatched arity is a call-site defect, not a
// dispatch miss.
func (t *Table[F]) Lookup(vals ...int) (F, bool) {
	if len(vals) != len(t.dims) {
		panic(fmt.Sprintf("specialize: lookup arity %d against %d-dimensional table",
			len(vals), len(t.dims)))
	}
	var zero F
	if t.allContiguous {
		flat := 0
		oob := uint(0)
		for k, d := range t.dims {
			off := contiguousOffset(d, vals[k])
			oob |= b2u(off >= uint(d.Size()))
			flat += int(off) * t.strides[k]
		}
		if oob == 0 {
			return t.entries[flat], true
		}
		return zero, false
	}
	flat := 0
	allHit := true
	for k, d := range t.dims {
		i, hit := d.Find(vals[k])
		allHit = allHit && hit
		flat += i * t.strides[k]
	}
	if allHit {
		return t.entries[flat], true
	}
	return zero, false
}

// Dims returns the number of dispatch dimensions.
func (t *Table[F]) Dims() int { return len(t.dims) }

// Size returns the total number of variants.
func (t *Table[F]) Size() int { return len(t.entries) }
