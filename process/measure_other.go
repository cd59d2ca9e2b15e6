// Copyright © 2025 The Gomon Project.

//go:build !linux

package process

import (
	"github.com/zosmac/gocore"
)

// The locked memory counter is read from the Linux procfs status file;
// other platforms do not expose it.

func getPids() ([]Pid, error) {
	return nil, gocore.Unsupported()
}

func (pid Pid) id() (Id, error) {
	return Id{}, gocore.Unsupported()
}

func (pid Pid) sample() (uint64, bool) {
	return 0, false
}
