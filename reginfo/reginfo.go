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

// Package reginfo reports the register and vector capabilities of the
// running CPU. The dispatch and unrolling packages consume it only to
// pick tuning constants (unroll factors, block sizes); nothing in it
// affects dispatch semantics.
//
// Detection happens once at init in the build-tagged detect_*.go files
// and the result is immutable afterwards. Setting SPECIALIZE_NO_SIMD
// forces the conservative scalar profile, which is useful when
// comparing tuned and untuned code paths.
package reginfo

import (
	"os"
	"strconv"
)

// ISA identifies the instruction set the capability profile describes.
type ISA uint8

const (
	// Scalar indicates no usable SIMD; conservative baseline numbers.
	Scalar ISA = iota

	// SSE2 indicates x86-64 SSE2 (128-bit vectors, the amd64 baseline).
	SSE2

	// AVX2 indicates x86-64 AVX2 (256-bit vectors).
	AVX2

	// AVX512 indicates x86-64 AVX-512 (512-bit vectors).
	AVX512

	// NEON indicates ARM NEON (128-bit vectors, the arm64 baseline).
	NEON

	// SVE indicates ARM SVE scalable vectors (128-bit minimum assumed).
	SVE

	// SME indicates ARM SME; treated as SVE-shaped for sizing purposes.
	SME
)

// String returns the conventional lowercase name for the ISA.
func (isa ISA) String() string {
	switch isa {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	case SME:
		return "sme"
	default:
		return "unknown"
	}
}

// Info describes the registers and vector shape available for an ISA.
type Info struct {
	// ISA is the instruction set this profile describes.
	ISA ISA

	// GPRegisters is the number of general-purpose integer registers.
	GPRegisters int

	// VectorRegisters is the number of SIMD/vector registers.
	VectorRegisters int

	// VectorWidthBits is the vector register width in bits.
	VectorWidthBits int

	// Lanes64 is the number of 64-bit elements per vector.
	Lanes64 int

	// Lanes32 is the number of 32-bit elements per vector.
	Lanes32 int
}

// current is fixed by init() in the detect_*.go file for this arch.
var current Info

// Available returns the capability profile detected at startup.
func Available() Info { return current }

// Detected returns the instruction set detected at startup.
func Detected() ISA { return current.ISA }

// VectorWidthBits returns the detected vector width in bits.
func VectorWidthBits() int { return current.VectorWidthBits }

// Lanes32 returns the number of 32-bit lanes per vector.
func Lanes32() int { return current.Lanes32 }

// Lanes64 returns the number of 64-bit lanes per vector.
func Lanes64() int { return current.Lanes64 }

// SuggestedUnroll returns an unroll factor sized so that independent
// accumulator chains roughly cover the machine's 32-bit lanes twice
// over, clamped to [4, 16]. Callers treat this as a hint only.
func SuggestedUnroll() int {
	u := current.Lanes32 * 2
	if u < 4 {
		u = 4
	}
	if u > 16 {
		u = 16
	}
	return u
}

// infoFor returns the fixed capability profile for a known ISA.
func infoFor(isa ISA) Info {
	switch isa {
	case SSE2:
		// 16 GP registers, XMM0-XMM15.
		return Info{ISA: isa, GPRegisters: 16, VectorRegisters: 16,
			VectorWidthBits: 128, Lanes64: 2, Lanes32: 4}
	case AVX2:
		// YMM0-YMM15.
		return Info{ISA: isa, GPRegisters: 16, VectorRegisters: 16,
			VectorWidthBits: 256, Lanes64: 4, Lanes32: 8}
	case AVX512:
		// ZMM0-ZMM31.
		return Info{ISA: isa, GPRegisters: 16, VectorRegisters: 32,
			VectorWidthBits: 512, Lanes64: 8, Lanes32: 16}
	case NEON, SVE, SME:
		// x0-x30 and V0-V31/Z0-Z31; SVE width is reported at its
		// guaranteed 128-bit minimum.
		return Info{ISA: isa, GPRegisters: 31, VectorRegisters: 32,
			VectorWidthBits: 128, Lanes64: 2, Lanes32: 4}
	default:
		return Info{ISA: Scalar, GPRegisters: 16, VectorRegisters: 16,
			VectorWidthBits: 128, Lanes64: 2, Lanes32: 4}
	}
}

// noSimdEnv reports whether SPECIALIZE_NO_SIMD requests the scalar
// profile. Any non-empty value that does not parse as false counts.
func noSimdEnv() bool {
	val := os.Getenv("SPECIALIZE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
