// Copyright © 2025 The Gomon Project.

package rlimit

import (
	"github.com/zosmac/gocore"
	"golang.org/x/sys/unix"
)

// memlock reads RLIMIT_MEMLOCK, reporting values in kilobytes.
func memlock() (Limit, Limit, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		return 0, 0, gocore.Error("Getrlimit RLIMIT_MEMLOCK", err)
	}
	return limit(rl.Cur), limit(rl.Max), nil
}

// limit converts a raw rlimit value in bytes to a Limit in kilobytes.
func limit(v uint64) Limit {
	if v == unix.RLIM_INFINITY {
		return Unlimited
	}
	return Limit(v / 1024)
}
