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

// ErrNoMatch is reported by the strict dispatch helpers when the
// runtime values select no variant. The silent helpers return the zero
// Result instead and never invoke anything.
var ErrNoMatch = errors.New("specialize: no matching variant for runtime value")

// Fn is the variant shape for dispatch with a result. Extra runtime
// arguments ride in A as a single value or a small struct of values;
// both stay in registers across the table-indexed call, so the hit
// path allocates nothing and boxes nothing.
type Fn[A, R any] func(A) R

// Proc is the variant shape for dispatch without a result.
type Proc[A any] func(A)

// Dispatch1 invokes the variant selected by v with arg and returns its
// result. On a miss it returns the zero R; the variant is not invoked.
func Dispatch1[A, R any](t *Table1[Fn[A, R]], v int, arg A) R {
	if f, ok := t.Lookup(v); ok {
		return f(arg)
	}
	var zero R
	return zero
}

// Dispatch1Strict is Dispatch1 with the strict miss policy: a miss
// reports ErrNoMatch instead of yielding the zero R.
func Dispatch1Strict[A, R any](t *Table1[Fn[A, R]], v int, arg A) (R, error) {
	if f, ok := t.Lookup(v); ok {
		return f(arg), nil
	}
	var zero R
	return zero, fmt.Errorf("%w: %d outside %s", ErrNoMatch, v, t.domain)
}

// Invoke1 invokes the void variant selected by v, doing nothing on a
// miss.
func Invoke1[A any](t *Table1[Proc[A]], v int, arg A) {
	if f, ok := t.Lookup(v); ok {
		f(arg)
	}
}

// Invoke1Strict reports ErrNoMatch when v selects no variant.
func Invoke1Strict[A any](t *Table1[Proc[A]], v int, arg A) error {
	f, ok := t.Lookup(v)
	if !ok {
		return fmt.Errorf("%w: %d outside %s", ErrNoMatch, v, t.domain)
	}
	f(arg)
	return nil
}

// Dispatch2 invokes the variant selected by (v0, v1), returning the
// zero R on a miss.
func Dispatch2[A, R any](t *Table2[Fn[A, R]], v0, v1 int, arg A) R {
	if f, ok := t.Lookup(v0, v1); ok {
		return f(arg)
	}
	var zero R
	return zero
}

// Dispatch2Strict is Dispatch2 with the strict miss policy.
func Dispatch2Strict[A, R any](t *Table2[Fn[A, R]], v0, v1 int, arg A) (R, error) {
	if f, ok := t.Lookup(v0, v1); ok {
		return f(arg), nil
	}
	var zero R
	return zero, fmt.Errorf("%w: (%d, %d)", ErrNoMatch, v0, v1)
}

// Invoke2 invokes the void variant selected by (v0, v1), doing nothing
// on a miss.
func Invoke2[A any](t *Table2[Proc[A]], v0, v1 int, arg A) {
	if f, ok := t.Lookup(v0, v1); ok {
		f(arg)
	}
}

// Invoke2Strict reports ErrNoMatch when (v0, v1) selects no variant.
func Invoke2Strict[A any](t *Table2[Proc[A]], v0, v1 int, arg A) error {
	f, ok := t.Lookup(v0, v1)
	if !ok {
		return fmt.Errorf("%w: (%d, %d)", ErrNoMatch, v0, v1)
	}
	f(arg)
	return nil
}

// Dispatch invokes the N-dimensional variant selected by vals,
// returning the zero R on a miss.
func Dispatch[A, R any](t *Table[Fn[A, R]], arg A, vals ...int) R {
	if f, ok := t.Lookup(vals...); ok {
		return f(arg)
	}
	var zero R
	return zero
}

// DispatchStrict is Dispatch with the strict miss policy.
func DispatchStrict[A, R any](t *Table[Fn[A, R]], arg A, vals ...int) (R, error) {
	if f, ok := t.Lookup(vals...); ok {
		return f(arg), nil
	}
	var zero R
	return zero, fmt.Errorf("%w: %v", ErrNoMatch, vals)
}

// Invoke invokes the N-dimensional void variant selected by vals,
// doing nothing on a miss.
func Invoke[A any](t *Table[Proc[A]], arg A, vals ...int) {
	if f, ok := t.Lookup(vals...); ok {
		f(arg)
	}
}

// InvokeStrict reports ErrNoMatch when vals select no variant.
func InvokeStrict[A any](t *Table[Proc[A]], arg A, vals ...int) error {
	f, ok := t.Lookup(vals...)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoMatch, vals)
	}
	f(arg)
	return nil
}

// DispatchTuples invokes the variant of the first allowed tuple
// matching vals, returning the zero R when none matches.
func DispatchTuples[A, R any](t *TupleTable[Fn[A, R]], arg A, vals ...int) R {
	if f, ok := t.Lookup(vals...); ok {
		return f(arg)
	}
	var zero R
	return zero
}

// DispatchTuplesStrict is DispatchTuples with the strict miss policy.
func DispatchTuplesStrict[A, R any](t *TupleTable[Fn[A, R]], arg A, vals ...int) (R, error) {
	if f, ok := t.Lookup(vals...); ok {
		return f(arg), nil
	}
	var zero R
	return zero, fmt.Errorf("%w: %v", ErrNoMatch, vals)
}

// InvokeTuples invokes the void variant of the first matching tuple,
// doing nothing when none matches.
func InvokeTuples[A any](t *TupleTable[Proc[A]], arg A, vals ...int) {
	if f, ok := t.Lookup(vals...); ok {
		f(arg)
	}
}

// InvokeTuplesStrict reports ErrNoMatch when no tuple matches.
func InvokeTuplesStrict[A any](t *TupleTable[Proc[A]], arg A, vals ...int) error {
	f, ok := t.Lookup(vals...)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoMatch, vals)
	}
	f(arg)
	return nil
}
