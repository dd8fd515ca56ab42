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
	"testing"
)

func TestTupleTableDeclarationOrder(t *testing.T) {
	tab, err := NewTupleTable(func(vals []int) string {
		switch {
		case vals[0] == 1 && vals[1] == 2:
			return "a"
		case vals[0] == 2 && vals[1] == 4:
			return "b"
		default:
			return "c"
		}
	}, []int{1, 2}, []int{2, 4}, []int{3, 6})
	if err != nil {
		t.Fatalf("NewTupleTable: %v", err)
	}

	got, ok := tab.Lookup(2, 4)
	if !ok || got != "b" {
		t.Errorf("Lookup(2, 4) = (%q, %v), want (\"b\", true)", got, ok)
	}
	if _, ok := tab.Lookup(1, 4); ok {
		t.Error("Lookup(1, 4) matched: tuple sets are not cartesian products")
	}
	if _, ok := tab.Lookup(2, 2); ok {
		t.Error("Lookup(2, 2) matched, want miss")
	}
}

func TestTupleTableConstructionErrors(t *testing.T) {
	build := func(vals []int) int { return 0 }

	if _, err := NewTupleTable(build); !errors.Is(err, ErrEmptyTupleSet) {
		t.Errorf("no tuples: error = %v, want ErrEmptyTupleSet", err)
	}
	if _, err := NewTupleTable(build, []int{1, 2}, []int{3}); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("mixed arity: error = %v, want ErrArityMismatch", err)
	}
	if _, err := NewTupleTable(build, []int{1, 2}, []int{3, 4}, []int{1, 2}); !errors.Is(err, ErrDuplicateTuple) {
		t.Errorf("duplicate tuple: error = %v, want ErrDuplicateTuple", err)
	}
	if _, err := NewTupleTable(build, []int{}); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("empty tuple: error = %v, want ErrArityMismatch", err)
	}
}

func TestTupleTableFirstMatchWins(t *testing.T) {
	// Distinct tuples can still overlap a runtime value partially;
	// only an exact, earliest match is invoked.
	calls := []string{}
	tab := MustNewTupleTable(func(vals []int) Proc[struct{}] {
		name := "second"
		if vals[1] == 7 {
			name = "first"
		}
		return func(struct{}) { calls = append(calls, name) }
	}, []int{5, 7}, []int{5, 8})

	InvokeTuples(tab, struct{}{}, 5, 7)
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("calls = %v, want [first]", calls)
	}
}

func TestTupleTableMutatesNothingOnCopy(t *testing.T) {
	src := []int{9, 9}
	tab := MustNewTupleTable(func(vals []int) int { return vals[0] }, src)
	src[0] = 1
	if _, ok := tab.Lookup(1, 9); ok {
		t.Error("table should hold its own copy of the declared tuples")
	}
	if _, ok := tab.Lookup(9, 9); !ok {
		t.Error("declared tuple lost after caller mutation")
	}
}
