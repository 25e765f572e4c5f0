// Copyright 2023 Gustavo C. Viegas. All rights reserved.

//go:build !amd64 && !arm64

package lanes

func hostFeatures() []Feature { return nil }
