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

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyDomain is reported when a domain is constructed with no values.
// An empty domain could never select a variant, so it is rejected at
// construction rather than surfacing as a permanent dispatch miss.
var ErrEmptyDomain = errors.New("specialize: empty domain")

// Domain is a finite, ordered set of admissible integer values for one
// dispatch dimension. The declared order defines each value's index,
// which is the position of the variant bound to it in a Table.
//
// A Domain is immutable after construction and safe for concurrent use.
type Domain struct {
	values []int

	// Contiguous run (ascending or descending by 1): index is a single
	// subtraction from first plus one unsigned bounds comparison.
	contiguous bool
	ascending  bool
	first      int

	// Sparse lookup metadata: sorted unique keys with the original
	// declared position of each key's first occurrence. When the keys
	// form an arithmetic progression the index is computed directly.
	keys    []int
	pos     []int
	strided bool
	stride  int
}

// Range returns the contiguous inclusive domain lo..hi. When hi < lo
// the domain descends: Range(8, 1) declares 8, 7, ..., 1 in that order.
func Range(lo, hi int) *Domain {
	d := &Domain{contiguous: true, first: lo}
	if lo <= hi {
		d.ascending = true
		d.values = make([]int, hi-lo+1)
		for i := range d.values {
			d.values[i] = lo + i
		}
	} else {
		d.values = make([]int, lo-hi+1)
		for i := range d.values {
			d.values[i] = lo - i
		}
	}
	return d
}

// Values returns a domain holding vals in declared order. Values may be
// sparse and unordered. Duplicates are tolerated: every occurrence of a
// value resolves to the index of its first occurrence.
func Values(vals ...int) (*Domain, error) {
	if len(vals) == 0 {
		return nil, ErrEmptyDomain
	}
	d := &Domain{values: append([]int(nil), vals...)}
	d.classify()
	return d, nil
}

// MustValues is Values for package-level table construction; it panics
// on an invalid value set.
func MustValues(vals ...int) *Domain {
	d, err := Values(vals...)
	if err != nil {
		panic(err)
	}
	return d
}

// classify detects the lookup strategy for the declared values.
func (d *Domain) classify() {
	d.first = d.values[0]

	// A declared-order run stepping by exactly +1 or -1 gets the
	// contiguous offset path. Permutations of a dense interval are
	// deliberately excluded: their declared positions do not follow
	// from an offset, so they take the sparse path below (where a
	// stride-1 progression still resolves in O(1)).
	if len(d.values) == 1 {
		d.contiguous = true
		d.ascending = true
		return
	}
	step := d.values[1] - d.values[0]
	if step == 1 || step == -1 {
		run := true
		for i := 1; i < len(d.values); i++ {
			if d.values[i]-d.values[i-1] != step {
				run = false
				break
			}
		}
		if run {
			d.contiguous = true
			d.ascending = step == 1
			return
		}
	}

	d.buildSparseIndex()
}

// buildSparseIndex derives the sorted (key, first position) table used
// by the sparse lookup paths. Duplicate values collapse to the smallest
// declared position, kept stable by the sort.
func (d *Domain) buildSparseIndex() {
	type kv struct {
		key int
		pos int
	}
	pairs := make([]kv, len(d.values))
	for i, v := range d.values {
		pairs[i] = kv{key: v, pos: i}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	d.keys = d.keys[:0]
	d.pos = d.pos[:0]
	for i, p := range pairs {
		if i > 0 && p.key == pairs[i-1].key {
			continue // first occurrence wins
		}
		d.keys = append(d.keys, p.key)
		d.pos = append(d.pos, p.pos)
	}

	// Constant positive stride across the unique keys enables the O(1)
	// division path; the keys are sorted, so the stride is positive
	// whenever it is constant.
	if len(d.keys) >= 2 {
		stride := d.keys[1] - d.keys[0]
		for i := 2; i < len(d.keys); i++ {
			if d.keys[i]-d.keys[i-1] != stride {
				return
			}
		}
		d.strided = true
		d.stride = stride
	}
}

// Size returns the number of declared values, counting duplicates.
func (d *Domain) Size() int { return len(d.values) }

// Contiguous reports whether the domain is a dense ascending or
// descending run resolved by arithmetic offset.
func (d *Domain) Contiguous() bool { return d.contiguous }

// First returns the value at index 0.
func (d *Domain) First() int { return d.first }

// At returns the value declared at index i.
func (d *Domain) At(i int) int { return d.values[i] }

// Find maps a runtime value to its declared index, or reports a miss.
// Contiguous domains resolve with one subtraction and one unsigned
// comparison; a negative offset wraps past the length, so a single
// compare covers both bounds. Sparse domains use the strided division
// path when eligible, and binary search otherwise.
func (d *Domain) Find(v int) (int, bool) {
	if d.contiguous {
		var idx uint
		if d.ascending {
			idx = uint(v - d.first)
		} else {
			idx = uint(d.first - v)
		}
		if idx < uint(len(d.values)) {
			return int(idx), true
		}
		return 0, false
	}
	if d.strided {
		diff := v - d.keys[0]
		if diff < 0 || diff%d.stride != 0 {
			return 0, false
		}
		if q := diff / d.stride; q < len(d.keys) {
			return d.pos[q], true
		}
		return 0, false
	}
	i := sort.SearchInts(d.keys, v)
	if i < len(d.keys) && d.keys[i] == v {
		return d.pos[i], true
	}
	return 0, false
}

// String describes the domain for diagnostics.
func (d *Domain) String() string {
	if d.contiguous && len(d.values) > 1 {
		return fmt.Sprintf("[%d..%d]", d.first, d.values[len(d.values)-1])
	}
	return fmt.Sprintf("%v", d.values)
}
