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

// Command unrollgen emits the fixed-count block runners consumed by
// package unroll.
//
// Usage:
//
//	unrollgen -max 32 -smalltail 16 -output zz_unroll_blocks.go
//
// Or via go:generate from the unroll package:
//
//	//go:generate go run ../cmd/unrollgen -max 32 -smalltail 16 -output zz_unroll_blocks.go
//
// The output holds one runner per count from 1 to -max for each body
// shape (plain index and lane-aware), the selector functions mapping a
// runtime count to its runner, and the direct switch cascades used for
// remainders up to -smalltail. The generated file is checked in;
// rerunning the generator must reproduce it exactly.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	maxRunner = flag.Int("max", 32, "Largest generated fixed-count runner")
	smallTail = flag.Int("smalltail", 16, "Largest remainder handled by the direct switch cascades")
	output    = flag.String("output", "zz_unroll_blocks.go", "Output file path")
)

func main() {
	flag.Parse()

	if *maxRunner < 1 || *smallTail < 1 || *smallTail > *maxRunner {
		log.Fatalf("unrollgen: invalid bounds -max %d -smalltail %d", *maxRunner, *smallTail)
	}
	src, err := generate(*maxRunner, *smallTail)
	if err != nil {
		log.Fatalf("unrollgen: %v", err)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("unrollgen: %v", err)
	}
	fmt.Printf("wrote %s: runners 1..%d, tail cascade through %d\n", *output, *maxRunner, *smallTail)
}

// shape describes one generated body form.
type shape struct {
	// name is the lowercase shape name; it is title-cased into the
	// runner and selector identifiers.
	name string

	// lanes indicates the body also receives the lane id.
	lanes bool
}

var shapes = []shape{
	{name: "index", lanes: false},
	{name: "lanes", lanes: true},
}

// generate renders the complete generated file for the given bounds
// and returns it gofmt-formatted.
func generate(max, smallTailMax int) ([]byte, error) {
	title := cases.Title(language.English)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by unrollgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package unroll\n\n")
	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "\t// maxBlock is the largest generated fixed-count runner.\n")
	fmt.Fprintf(&buf, "\tmaxBlock = %d\n\n", max)
	fmt.Fprintf(&buf, "\t// smallTailMax is the largest remainder handled by the direct\n")
	fmt.Fprintf(&buf, "\t// switch cascades; larger remainders go through a dispatch table.\n")
	fmt.Fprintf(&buf, "\tsmallTailMax = %d\n", smallTailMax)
	fmt.Fprintf(&buf, ")\n")

	for _, s := range shapes {
		for n := 1; n <= max; n++ {
			emitRunner(&buf, title.String(s.name), s.lanes, n)
		}
	}
	for _, s := range shapes {
		emitSelector(&buf, title.String(s.name), s.lanes, max)
	}
	for _, s := range shapes {
		emitCascade(&buf, title.String(s.name), s.lanes, smallTailMax)
	}
	return format.Source(buf.Bytes())
}

// emitRunner writes the fixed-count runner for n body calls. The body
// indices are carried in one variable per position so each call chain
// stays independent.
func emitRunner(buf *bytes.Buffer, shapeName string, lanes bool, n int) {
	bodyParam := "fn func(T)"
	if lanes {
		bodyParam = "fn func(int, T)"
	}
	fmt.Fprintf(buf, "\n")
	if n == 1 {
		fmt.Fprintf(buf, "func run%s1[T Integer](%s, i0, _ T) {\n", shapeName, bodyParam)
	} else {
		fmt.Fprintf(buf, "func run%s%d[T Integer](%s, i0, step T) {\n", shapeName, n, bodyParam)
	}
	for k := 1; k < n; k++ {
		fmt.Fprintf(buf, "\ti%d := i%d + step\n", k, k-1)
	}
	for k := 0; k < n; k++ {
		if lanes {
			fmt.Fprintf(buf, "\tfn(%d, i%d)\n", k, k)
		} else {
			fmt.Fprintf(buf, "\tfn(i%d)\n", k)
		}
	}
	fmt.Fprintf(buf, "}\n")
}

// emitSelector writes the count-to-runner mapping for one shape.
func emitSelector(buf *bytes.Buffer, shapeName string, lanes bool, max int) {
	fnType := "blockFn[T]"
	if lanes {
		fnType = "laneBlockFn[T]"
	}
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "// block%s returns the fixed-count %s runner for n in [1, maxBlock].\n",
		shapeName, describeShape(lanes))
	fmt.Fprintf(buf, "func block%s[T Integer](n int) %s {\n", shapeName, fnType)
	fmt.Fprintf(buf, "\tswitch n {\n")
	for n := 1; n <= max; n++ {
		fmt.Fprintf(buf, "\tcase %d:\n\t\treturn run%s%d[T]\n", n, shapeName, n)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\treturn nil\n")
	fmt.Fprintf(buf, "}\n")
}

// emitCascade writes the direct small-remainder switch for one shape.
func emitCascade(buf *bytes.Buffer, shapeName string, lanes bool, smallTailMax int) {
	bodyParam := "fn func(T)"
	if lanes {
		bodyParam = "fn func(int, T)"
	}
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "// tail%s runs the n-count %s runner directly for n in [1, smallTailMax].\n",
		shapeName, describeShape(lanes))
	fmt.Fprintf(buf, "func tail%s[T Integer](n int, %s, i0, step T) {\n", shapeName, bodyParam)
	fmt.Fprintf(buf, "\tswitch n {\n")
	for n := 1; n <= smallTailMax; n++ {
		fmt.Fprintf(buf, "\tcase %d:\n\t\trun%s%d(fn, i0, step)\n", n, shapeName, n)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

func describeShape(lanes bool) string {
	if lanes {
		return "lane"
	}
	return "index"
}
