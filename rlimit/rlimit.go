// Copyright © 2025 The Gomon Project.

package rlimit

import (
	"math"
	"strconv"
)

type (
	// Limit is a locked memory resource limit in kilobytes.
	Limit uint64
)

// Unlimited reports that the system imposes no bound on locked memory.
const Unlimited = Limit(math.MaxUint64)

// String formats a limit to comply with fmt.Stringer interface.
func (l Limit) String() string {
	if l == Unlimited {
		return "unlimited"
	}
	return strconv.FormatUint(uint64(l), 10)
}

// Memlock queries the soft and hard locked memory limits of the current
// process. The query is display only: an error means the platform does not
// expose the limits, and the caller reports them as unavailable.
func Memlock() (soft, hard Limit, err error) {
	return memlock()
}
