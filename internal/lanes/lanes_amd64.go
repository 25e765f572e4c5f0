// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package lanes

import (
	"golang.org/x/sys/cpu"
)

func hostFeatures() []Feature {
	return []Feature{
		{"sse2", cpu.X86.HasSSE2},
		{"sse3", cpu.X86.HasSSE3},
		{"ssse3", cpu.X86.HasSSSE3},
		{"sse41", cpu.X86.HasSSE41},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
	}
}
