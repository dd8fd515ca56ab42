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

//go:build arm64

package reginfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	if noSimdEnv() {
		current = infoFor(Scalar)
		return
	}
	switch {
	case cpu.ARM64.HasSME:
		current = infoFor(SME)
	case cpu.ARM64.HasSVE:
		current = infoFor(SVE)
	case cpu.ARM64.HasASIMD || runtime.GOOS == "darwin":
		// x/sys/cpu cannot read feature registers on darwin, but NEON
		// is architecturally guaranteed on Apple Silicon.
		current = infoFor(NEON)
	default:
		// NEON is mandatory in ARMv8-A; trust the baseline even when
		// the kernel does not expose HWCAP.
		current = infoFor(NEON)
	}
}
