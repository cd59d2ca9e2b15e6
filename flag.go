// Copyright © 2025 The Gomon Project.

package main

import (
	"fmt"
	"strings"

	"github.com/zosmac/gocore"
)

var (
	// formats are the valid report formats.
	formats = gocore.ValidValue[format]{}.Define(
		"table",
		"yaml",
	)

	// flags defines the command line flags.
	flags = struct {
		port int
		format
	}{
		port:   0,
		format: "table",
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number for serving Prometheus metrics of the run in progress; 0 disables the server",
	)
	gocore.Flags.Var(
		&flags.format,
		"format",
		"[-format "+strings.Join(formats.ValidValues(), "|")+"]",
		"The `format` of the peak locked memory report",
	)

	gocore.Flags.CommandDescription = `Supervises a go test invocation and reports
	the peak locked (unpageable) memory pinned by each test binary it spawns,
	to diagnose crashes from exceeding the locked memory resource limits.
	Additional arguments are forwarded to go test unchanged, and the exit
	code mirrors the test run's exit code.`
}

// format is a command line flag type.
type format string

// Set is a flag.Value interface method to enable format as a command line flag.
func (f *format) Set(s string) error {
	if !formats.IsValid(format(s)) {
		return fmt.Errorf("valid formats are %s", strings.Join(formats.ValidValues(), ", "))
	}
	*f = format(s)
	return nil
}

// String is a flag.Value interface method to enable format as a command line flag.
func (f *format) String() string {
	return string(*f)
}
