// Copyright © 2025 The Gomon Project.

//go:build !linux

package rlimit

import (
	"github.com/zosmac/gocore"
)

// memlock reports that the platform does not expose locked memory limits.
func memlock() (Limit, Limit, error) {
	return 0, 0, gocore.Unsupported()
}
