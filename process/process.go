// Copyright © 2025 The Gomon Project.

package process

import (
	"strconv"
)

type (
	// Pid is the identifier for a process.
	Pid int

	// Id identifies a process. Pids are recycled by the OS, so Starttime
	// serves as the fingerprint that distinguishes a reused pid from the
	// process previously observed under it.
	Id struct {
		ppid      Pid
		Name      string
		Pid       Pid
		Starttime uint64 // in clock ticks since boot
	}
)

// String formats a pid as a string to comply with fmt.Stringer interface.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}

// Identity captures the identity of a process. A process that exited
// between enumeration and inspection reports an error; callers skip it.
func Identity(pid Pid) (Id, error) {
	return pid.id()
}

// Sample reads the locked memory counter of a process, in kilobytes.
// ok is false when the process has exited or its status is unreadable,
// an expected race rather than a failure.
func Sample(pid Pid) (kb uint64, ok bool) {
	return pid.sample()
}
