// Copyright © 2025 The Gomon Project.

package monitor

import (
	"errors"
	"time"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		sample
	}{
		sample: sample(100 * time.Millisecond),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.sample,
		"sample",
		"[-sample <interval>]",
		"Sample locked memory at `interval`, specified in Go time.Duration string format",
	)
}

// sample is a command line flag type.
type sample time.Duration

// Set is a flag.Value interface method to enable sample as a command line flag.
func (i *sample) Set(s string) error {
	d, err := time.ParseDuration(s)
	if d <= 0 {
		return errors.New("invalid sample interval")
	}
	*i = sample(d)
	return err
}

// String is a flag.Value interface method to enable sample as a command line flag.
func (i *sample) String() string {
	return time.Duration(*i).String()
}
