// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package lanes

import (
	"golang.org/x/sys/cpu"
)

func hostFeatures() []Feature {
	return []Feature{
		{"fp", cpu.ARM64.HasFP},
		{"asimd", cpu.ARM64.HasASIMD},
		{"asimdhp", cpu.ARM64.HasASIMDHP},
		{"sve", cpu.ARM64.HasSVE},
	}
}
