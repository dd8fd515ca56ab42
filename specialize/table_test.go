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

import "testing"

func TestTable1BuildOncePerValue(t *testing.T) {
	built := map[int]int{}
	tab := NewTable1(func(v int) int {
		built[v]++
		return v * v
	}, Range(1, 8))

	for v := 1; v <= 8; v++ {
		if built[v] != 1 {
			t.Errorf("builder ran %d times for %d, want exactly once", built[v], v)
		}
		got, ok := tab.Lookup(v)
		if !ok || got != v*v {
			t.Errorf("Lookup(%d) = (%d, %v), want (%d, true)", v, got, ok, v*v)
		}
	}
	if _, ok := tab.Lookup(9); ok {
		t.Error("Lookup(9) matched, want miss")
	}
	if _, ok := tab.Lookup(0); ok {
		t.Error("Lookup(0) matched, want miss")
	}
}

func TestTable1SparseDomain(t *testing.T) {
	tab := NewTable1(func(v int) int { return v * 10 }, MustValues(2, 5, 11))
	for _, v := range []int{2, 5, 11} {
		got, ok := tab.Lookup(v)
		if !ok || got != v*10 {
			t.Errorf("Lookup(%d) = (%d, %v), want (%d, true)", v, got, ok, v*10)
		}
	}
	for _, v := range []int{3, 4, 6, 10, 12} {
		if _, ok := tab.Lookup(v); ok {
			t.Errorf("Lookup(%d) matched, want miss", v)
		}
	}
}

func TestTable2RowMajorLayout(t *testing.T) {
	type cell struct{ r, c int }
	tab := NewTable2(func(r, c int) cell { return cell{r, c} },
		Range(1, 3), Range(10, 12))

	for r := 1; r <= 3; r++ {
		for c := 10; c <= 12; c++ {
			got, ok := tab.Lookup(r, c)
			if !ok {
				t.Fatalf("Lookup(%d, %d) missed", r, c)
			}
			if got != (cell{r, c}) {
				t.Errorf("Lookup(%d, %d) = %+v, want {%d %d}", r, c, got, r, c)
			}
		}
	}
	misses := [][2]int{{0, 10}, {4, 10}, {1, 9}, {1, 13}, {0, 9}, {4, 13}}
	for _, m := range misses {
		if _, ok := tab.Lookup(m[0], m[1]); ok {
			t.Errorf("Lookup(%d, %d) matched, want miss", m[0], m[1])
		}
	}
}

// The all-contiguous and mixed/sparse paths must select the identical
// variant for the same logical inputs.
func TestFlatteningPathsAgree(t *testing.T) {
	build := func(vals []int) [2]int { return [2]int{vals[0], vals[1]} }

	contiguous := NewTable(build, Range(1, 4), Range(2, 6))
	if !contiguous.allContiguous {
		t.Fatal("both ranges contiguous: expected the fused path")
	}
	// The same logical domains, with the second declared sparse-style
	// (out of declared-order run) so the table takes the mixed path.
	mixed := NewTable(build, Range(1, 4), MustValues(2, 4, 3, 6, 5))
	if mixed.allContiguous {
		t.Fatal("unordered second domain: expected the mixed path")
	}

	for v0 := 0; v0 <= 5; v0++ {
		for v1 := 1; v1 <= 7; v1++ {
			a, aok := contiguous.Lookup(v0, v1)
			b, bok := mixed.Lookup(v0, v1)
			if aok != bok {
				t.Fatalf("Lookup(%d, %d): paths disagree on match (%v vs %v)", v0, v1, aok, bok)
			}
			if aok && a != b {
				t.Errorf("Lookup(%d, %d): fused %v, mixed %v", v0, v1, a, b)
			}
		}
	}
}

func TestTableThreeDimensions(t *testing.T) {
	tab := NewTable(func(vals []int) int {
		return vals[0]*100 + vals[1]*10 + vals[2]
	}, Range(0, 2), Range(0, 3), Range(0, 4))

	if tab.Size() != 3*4*5 {
		t.Fatalf("Size() = %d, want %d", tab.Size(), 3*4*5)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 5; k++ {
				got, ok := tab.Lookup(i, j, k)
				want := i*100 + j*10 + k
				if !ok || got != want {
					t.Errorf("Lookup(%d, %d, %d) = (%d, %v), want (%d, true)",
						i, j, k, got, ok, want)
				}
			}
		}
	}
	if _, ok := tab.Lookup(1, 2, 5); ok {
		t.Error("Lookup(1, 2, 5) matched, want miss")
	}
}

func TestTableDescendingDimension(t *testing.T) {
	tab := NewTable(func(vals []int) int { return vals[0] }, Range(8, 1))
	for v := 1; v <= 8; v++ {
		got, ok := tab.Lookup(v)
		if !ok || got != v {
			t.Errorf("Lookup(%d) = (%d, %v), want (%d, true)", v, got, ok, v)
		}
	}
}

func TestTableLookupArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("wrong-arity Lookup should panic")
		}
	}()
	tab := NewTable(func(vals []int) int { return 0 }, Range(0, 1), Range(0, 1))
	tab.Lookup(1)
}

func BenchmarkTable2LookupContiguous(b *testing.B) {
	tab := NewTable2(func(r, c int) int { return r * c }, Range(1, 8), Range(1, 8))
	for i := 0; i < b.N; i++ {
		tab.Lookup(1+i%8, 8-i%8)
	}
}
