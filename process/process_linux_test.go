// Copyright © 2025 The Gomon Project.

package process

import (
	"os"
	"os/exec"
	"testing"
)

func TestIdentitySelf(t *testing.T) {
	pid := Pid(os.Getpid())
	id, err := Identity(pid)
	if err != nil {
		t.Fatalf("Identity(%d) error: %v", pid, err)
	}
	if id.Pid != pid {
		t.Errorf("Identity pid %d, want %d", id.Pid, pid)
	}
	if id.ppid != Pid(os.Getppid()) {
		t.Errorf("Identity ppid %d, want %d", id.ppid, os.Getppid())
	}
	if id.Name == "" {
		t.Error("Identity name is empty")
	}
	if id.Starttime == 0 {
		t.Error("Identity starttime is zero")
	}
}

func TestIdentityGone(t *testing.T) {
	// pid 0 is the scheduler and has no /proc entry
	if _, err := Identity(Pid(0)); err == nil {
		t.Error("Identity(0) expected error, got nil")
	}
}

func TestSampleSelf(t *testing.T) {
	if _, ok := Sample(Pid(os.Getpid())); !ok {
		t.Error("Sample of the current process reported not available")
	}
}

func TestSampleGone(t *testing.T) {
	if kb, ok := Sample(Pid(0)); ok {
		t.Errorf("Sample(0) = %d, expected not available", kb)
	}
}

func TestBuildTableContainsSelf(t *testing.T) {
	tb, err := BuildTable()
	if err != nil {
		t.Fatalf("BuildTable() error: %v", err)
	}
	id, ok := tb[Pid(os.Getpid())]
	if !ok {
		t.Fatal("BuildTable() missing the current process")
	}
	if id.ppid != Pid(os.Getppid()) {
		t.Errorf("table ppid %d, want %d", id.ppid, os.Getppid())
	}
}

func TestDescendants(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer func() {
		cmd.Process.Kill()
		cmd.Wait()
	}()

	ids, err := Descendants(Pid(os.Getpid()))
	if err != nil {
		t.Fatalf("Descendants() error: %v", err)
	}

	child := Pid(cmd.Process.Pid)
	var found bool
	for _, id := range ids {
		if id.Pid == child {
			found = true
			if id.Name != "sleep" {
				t.Errorf("child name %q, want sleep", id.Name)
			}
			if id.Starttime == 0 {
				t.Error("child starttime is zero")
			}
		}
		if id.Pid == Pid(os.Getpid()) {
			t.Error("Descendants() includes the root process")
		}
	}
	if !found {
		t.Errorf("Descendants() = %v, missing child %d", ids, child)
	}
}

func TestDescendantsNone(t *testing.T) {
	// a just-started child with no children of its own
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer func() {
		cmd.Process.Kill()
		cmd.Wait()
	}()

	ids, err := Descendants(Pid(cmd.Process.Pid))
	if err != nil {
		t.Fatalf("Descendants() error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Descendants(sleep) = %v, want none", ids)
	}
}
