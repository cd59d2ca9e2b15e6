// Copyright © 2025 The Gomon Project.

package monitor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/zosmac/gocore"
	"golang.org/x/sys/unix"

	"github.com/zosmac/gomlock/process"
	"github.com/zosmac/gomlock/report"
)

// state of the monitor loop.
type state int

const (
	starting state = iota
	running
	draining
	finished
)

// ignoreNames are Go toolchain helpers spawned under a test invocation;
// they are build machinery, not test binaries, and are left out of the
// report.
var ignoreNames = map[string]bool{
	"go":      true,
	"compile": true,
	"link":    true,
	"asm":     true,
	"cgo":     true,
	"vet":     true,
}

type (
	// Command specifies the supervised invocation.
	Command struct {
		Path string
		Args []string
		Dir  string
	}

	// Result reports the outcome of a completed supervised run.
	Result struct {
		ExitCode int
		Output   []byte
	}

	// Monitor supervises a command, polling the locked memory counters of
	// its descendant processes and folding samples into peak records. A
	// single goroutine owns all of the monitor's state.
	Monitor struct {
		records  *report.Records
		command  Command
		interval time.Duration
		tracked  map[process.Pid]process.Id
		output   bytes.Buffer
	}
)

// New creates a monitor for a supervised command. The polling interval
// comes from the -sample flag.
func New(records *report.Records, command Command) *Monitor {
	return &Monitor{
		records:  records,
		command:  command,
		interval: time.Duration(flags.sample),
		tracked:  map[process.Pid]process.Id{},
	}
}

// Run drives the monitor to completion: spawn the command, poll its
// descendants until it exits, then drain with one final pass. A nil Result
// reports that the command never ran (launch failure or cancellation); a
// failing test run is a normal completion with a non-zero ExitCode.
func (m *Monitor) Run(ctx context.Context) (*Result, error) {
	var cmd *exec.Cmd
	var root process.Pid
	wait := make(chan error, 1)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for st := starting; st != finished; {
		switch st {
		case starting:
			cmd = exec.Command(m.command.Path, m.command.Args...)
			cmd.Dir = m.command.Dir
			cmd.Env = os.Environ()
			cmd.Stdout = &m.output
			cmd.Stderr = &m.output
			// own process group, so that cancellation can reach the
			// whole descendant tree
			cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
			if err := cmd.Start(); err != nil {
				return nil, gocore.Error("start", err, map[string]string{
					"command": cmd.String(),
				})
			}
			root = process.Pid(cmd.Process.Pid)
			go func() { wait <- cmd.Wait() }()
			st = running

		case running:
			select {
			case <-ctx.Done():
				m.kill(root)
				<-wait // reap
				return nil, ctx.Err()
			case <-wait:
				st = draining
			case <-ticker.C:
				m.poll(root)
			}

		case draining:
			// catch processes alive but unsampled at the last tick
			m.poll(root)
			st = finished
		}
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Output:   m.output.Bytes(),
	}, nil
}

// poll performs one discovery and sample pass over the descendants of the
// supervised command. A failed process table scan discards the whole tick;
// an individual unreadable process is skipped.
func (m *Monitor) poll(root process.Pid) {
	ids, err := process.Descendants(root)
	if err != nil {
		gocore.Error("descendants", err).Info()
		return
	}

	live := map[process.Pid]bool{}
	for _, id := range ids {
		live[id.Pid] = true
		// A pid whose starttime changed was reused between scans: the
		// previous identity is dead, and the sample belongs to the new
		// process, never to the name cached for the old one.
		if old, ok := m.tracked[id.Pid]; !ok || old.Starttime != id.Starttime {
			m.tracked[id.Pid] = id
		}
		if ignoreNames[id.Name] {
			continue
		}
		if kb, ok := process.Sample(id.Pid); ok {
			m.records.Update(id.Name, kb)
		}
	}

	// Retire identities only after a successful scan confirms the pid is
	// gone, so a reappearing pid is read afresh and never inherits the
	// name of the process that previously held it.
	for pid := range m.tracked {
		if !live[pid] {
			delete(m.tracked, pid)
		}
	}
}

// kill terminates the supervised command's process group.
func (m *Monitor) kill(root process.Pid) {
	if err := unix.Kill(-int(root), unix.SIGKILL); err != nil && err != unix.ESRCH {
		gocore.Error("kill", err, map[string]string{
			"pgid": root.String(),
		}).Warn()
	}
}
