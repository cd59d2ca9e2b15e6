// Copyright © 2025 The Gomon Project.

package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
)

// getPids gets the list of active processes by pid.
func getPids() ([]Pid, error) {
	dir, err := os.Open("/proc")
	if err != nil {
		return nil, gocore.Error("/proc", err)
	}
	ns, err := dir.Readdirnames(0)
	dir.Close()
	if err != nil {
		return nil, gocore.Error("/proc", err)
	}

	pids := make([]Pid, 0, len(ns))
	for _, n := range ns {
		if pid, err := strconv.Atoi(n); err == nil {
			pids = append(pids, Pid(pid))
		}
	}

	return pids, nil
}

// id captures the process identifier from the stat file. The comm field is
// parenthesized and may itself contain spaces, so the name is carved out
// before splitting the remaining fields.
func (pid Pid) id() (Id, error) {
	buf, err := os.ReadFile(filepath.Join("/proc", pid.String(), "stat"))
	if err != nil {
		return Id{}, gocore.Error("ReadFile", err)
	}

	stat := string(buf)
	i := strings.Index(stat, "(")
	j := strings.LastIndex(stat, ")")
	if i < 0 || j < i {
		return Id{}, gocore.Error("stat", fmt.Errorf("malformed %q", stat))
	}

	// fields following the comm field: state ppid pgrp session tty ...
	fields := strings.Fields(stat[j+1:])
	if len(fields) < 20 {
		return Id{}, gocore.Error("stat", fmt.Errorf("malformed %q", stat))
	}
	ppid, _ := strconv.Atoi(fields[1])
	start, _ := strconv.ParseUint(fields[19], 10, 64)

	return Id{
		ppid:      Pid(ppid),
		Name:      stat[i+1 : j],
		Pid:       pid,
		Starttime: start,
	}, nil
}

// sample reads the VmLck counter from the process status file.
func (pid Pid) sample() (uint64, bool) {
	m, err := gocore.Measures(filepath.Join("/proc", pid.String(), "status"))
	if err != nil {
		return 0, false // process exited, expected race
	}
	v, ok := m["VmLck"]
	if !ok {
		return 0, false // kernel thread or truncated read
	}
	kb, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return kb, true
}
