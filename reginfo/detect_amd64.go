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

//go:build amd64

package reginfo

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		current = infoFor(Scalar)
		return
	}
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL:
		current = infoFor(AVX512)
	case cpu.X86.HasAVX2:
		current = infoFor(AVX2)
	default:
		// SSE2 is part of the amd64 baseline.
		current = infoFor(SSE2)
	}
}
