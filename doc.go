// Copyright © 2025 The Gomon Project.

/*
Package main implements the "gomlock" command, which supervises a `go test`
invocation and reports, per spawned test binary, the peak amount of memory
the binary locked into physical RAM while it ran. Tests that pin memory
with mlock can die with obscure signals when they exceed the soft
RLIMIT_MEMLOCK bound; the report makes the culprit visible.

The command polls the Linux procfs VmLck counter of every descendant of the
test invocation, so a test binary whose entire lifetime fits between two
polling ticks is absent from the report. The -sample flag is the trade-off
between sampling fidelity and the overhead of repeated process table scans.

The main package defines the following command line flags:
  - -sample: the polling interval for locked memory samples (default 100ms)
  - -port:   serve Prometheus metrics of the running peaks on this port (default 0, disabled)
  - -format: the report format, table or yaml (default table)

Any additional arguments are forwarded to `go test` unchanged, and the
command's exit code mirrors the test run's exit code.
*/
package main
