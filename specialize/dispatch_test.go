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

// squarePlus binds v at build time; each variant computes v*v + scale.
func squarePlus(v int) Fn[int, int] {
	return func(scale int) int { return v*v + scale }
}

func TestDispatch1Hit(t *testing.T) {
	tab := NewTable1(squarePlus, Range(1, 8))
	if got := Dispatch1(tab, 5, 2); got != 27 {
		t.Fatalf("Dispatch1(5, scale=2) = %d, want 27", got)
	}
}

func TestDispatch1SilentMiss(t *testing.T) {
	invoked := false
	tab := NewTable1(func(v int) Fn[int, int] {
		return func(scale int) int {
			invoked = true
			return v * scale
		}
	}, Range(1, 8))

	if got := Dispatch1(tab, 9, 2); got != 0 {
		t.Errorf("silent miss = %d, want zero result", got)
	}
	if invoked {
		t.Error("variant invoked on miss")
	}
}

func TestDispatch1Strict(t *testing.T) {
	tab := NewTable1(squarePlus, Range(1, 8))

	got, err := Dispatch1Strict(tab, 5, 2)
	if err != nil || got != 27 {
		t.Fatalf("Dispatch1Strict hit = (%d, %v), want (27, nil)", got, err)
	}
	if _, err := Dispatch1Strict(tab, 9, 2); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("strict miss error = %v, want ErrNoMatch", err)
	}
}

func TestDispatch1ForwardsArgsUnchanged(t *testing.T) {
	type args struct {
		a, b  int
		label string
	}
	tab := NewTable1(func(v int) Fn[args, args] {
		return func(in args) args { return in }
	}, Range(0, 3))

	in := args{a: 11, b: -4, label: "k"}
	if got := Dispatch1(tab, 2, in); got != in {
		t.Errorf("forwarded args = %+v, want %+v", got, in)
	}
}

func TestInvoke1Policies(t *testing.T) {
	var seen []int
	tab := NewTable1(func(v int) Proc[int] {
		return func(x int) { seen = append(seen, v*x) }
	}, Range(2, 4))

	Invoke1(tab, 3, 10)
	if len(seen) != 1 || seen[0] != 30 {
		t.Fatalf("seen = %v, want [30]", seen)
	}

	Invoke1(tab, 5, 10) // silent: no call, no effect
	if len(seen) != 1 {
		t.Fatalf("silent miss invoked a variant: %v", seen)
	}

	if err := Invoke1Strict(tab, 5, 10); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("strict miss error = %v, want ErrNoMatch", err)
	}
	if err := Invoke1Strict(tab, 2, 1); err != nil {
		t.Fatalf("strict hit error = %v, want nil", err)
	}
}

func TestDispatch2(t *testing.T) {
	tab := NewTable2(func(w, h int) Fn[int, int] {
		return func(scale int) int { return w*h + scale }
	}, Range(1, 8), Range(1, 8))

	if got := Dispatch2(tab, 3, 4, 100); got != 112 {
		t.Errorf("Dispatch2(3, 4, 100) = %d, want 112", got)
	}
	if got := Dispatch2(tab, 0, 4, 100); got != 0 {
		t.Errorf("Dispatch2 miss = %d, want 0", got)
	}
	if _, err := Dispatch2Strict(tab, 9, 9, 0); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Dispatch2Strict miss error = %v, want ErrNoMatch", err)
	}
}

func TestDispatchN(t *testing.T) {
	tab := NewTable(func(vals []int) Fn[struct{}, int] {
		v0, v1, v2 := vals[0], vals[1], vals[2]
		return func(struct{}) int { return v0 + 10*v1 + 100*v2 }
	}, Range(0, 1), Range(0, 2), Range(0, 3))

	if got := Dispatch(tab, struct{}{}, 1, 2, 3); got != 321 {
		t.Errorf("Dispatch(1, 2, 3) = %d, want 321", got)
	}
	if got := Dispatch(tab, struct{}{}, 1, 2, 4); got != 0 {
		t.Errorf("Dispatch miss = %d, want 0", got)
	}
	got, err := DispatchStrict(tab, struct{}{}, 0, 0, 0)
	if err != nil || got != 0 {
		t.Errorf("DispatchStrict(0, 0, 0) = (%d, %v), want (0, nil)", got, err)
	}
	if _, err := DispatchStrict(tab, struct{}{}, 2, 0, 0); !errors.Is(err, ErrNoMatch) {
		t.Errorf("DispatchStrict miss error = %v, want ErrNoMatch", err)
	}
}

func TestDispatchTuples(t *testing.T) {
	tab := MustNewTupleTable(func(vals []int) Fn[int, int] {
		w, h := vals[0], vals[1]
		return func(scale int) int { return w*h*10 + scale }
	}, []int{1, 2}, []int{2, 4}, []int{4, 8})

	if got := DispatchTuples(tab, 7, 2, 4); got != 87 {
		t.Errorf("DispatchTuples(2, 4) = %d, want 87", got)
	}
	if got := DispatchTuples(tab, 7, 2, 8); got != 0 {
		t.Errorf("DispatchTuples miss = %d, want 0", got)
	}
	if _, err := DispatchTuplesStrict(tab, 7, 1, 8); !errors.Is(err, ErrNoMatch) {
		t.Errorf("DispatchTuplesStrict miss error = %v, want ErrNoMatch", err)
	}
}

func BenchmarkDispatch1(b *testing.B) {
	tab := NewTable1(squarePlus, Range(1, 8))
	var sink int
	for i := 0; i < b.N; i++ {
		sink += Dispatch1(tab, 1+i%8, 2)
	}
	_ = sink
}
