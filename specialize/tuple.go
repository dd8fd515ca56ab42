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
)

var (
	// ErrEmptyTupleSet is reported when a tuple table is constructed
	// with no allowed tuples.
	ErrEmptyTupleSet = errors.New("specialize: tuple set requires at least one tuple")

	// ErrArityMismatch is reported when the allowed tuples do not all
	// share one arity.
	ErrArityMismatch = errors.New("specialize: tuples must have the same arity")

	// ErrDuplicateTuple is reported when the same value combination is
	// declared twice.
	ErrDuplicateTuple = errors.New("specialize: duplicate allowed tuple")
)

// TupleTable dispatches on an explicit enumeration of allowed value
// combinations rather than a cartesian product. Tuples are matched in
// declaration order and the first match wins.
//
// Useful when only a few points of a large product are meaningful:
// (1,2) and (3,4) allowed, but not (1,4).
type TupleTable[F any] struct {
	arity   int
	tuples  [][]int
	entries []F
}

// NewTupleTable builds one variant per allowed tuple, in declaration
// order. All tuples must share one arity and be pairwise distinct;
// violations are construction errors, never runtime misses.
func NewTupleTable[F any](build func(vals []int) F, tuples ...[]int) (*TupleTable[F], error) {
	if len(tuples) == 0 {
		return nil, ErrEmptyTupleSet
	}
	arity := len(tuples[0])
	if arity == 0 {
		return nil, fmt.Errorf("%w: empty tuple", ErrArityMismatch)
	}
	for i, tp := range tuples {
		if len(tp) != arity {
			return nil, fmt.Errorf("%w: tuple %d has arity %d, want %d",
				ErrArityMismatch, i, len(tp), arity)
		}
		for j := 0; j < i; j++ {
			if tupleEqual(tuples[j], tp) {
				return nil, fmt.Errorf("%w: %v declared at %d and %d",
					ErrDuplicateTuple, tp, j, i)
			}
		}
	}

	t := &TupleTable[F]{
		arity:   arity,
		tuples:  make([][]int, len(tuples)),
		entries: make([]F, len(tuples)),
	}
	for i, tp := range tuples {
		t.tuples[i] = append([]int(nil), tp...)
		t.entries[i] = build(t.tuples[i])
	}
	return t, nil
}

// MustNewTupleTable is NewTupleTable for package-level construction; it
// panics on an invalid tuple set.
func MustNewTupleTable[F any](build func(vals []int) F, tuples ...[]int) *TupleTable[F] {
	t, err := NewTupleTable(build, tuples...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup compares vals against every allowed tuple in declaration
// order and returns the variant of the first match. Lookup panics when
// the arity differs from the table's, matching Table.Lookup.
func (t *TupleTable[F]) Lookup(vals ...int) (F, bool) {
	if len(vals) != t.arity {
		panic(fmt.Sprintf("specialize: lookup arity %d against tuple set of arity %d",
			len(vals), t.arity))
	}
	for i, tp := range t.tuples {
		if tupleEqual(tp, vals) {
			return t.entries[i], true
		}
	}
	var zero F
	return zero, false
}

// Arity returns the shared tuple arity.
func (t *TupleTable[F]) Arity() int { return t.arity }

// Size returns the number of allowed tuples.
func (t *TupleTable[F]) Size() int { return len(t.tuples) }

func tupleEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
