// Copyright © 2025 The Gomon Project.

package process

import (
	"sort"
)

type (
	// Table defines a process table as a map of pids to process identities.
	Table map[Pid]Id

	// Tree organizes the processes into a hierarchy.
	Tree map[Pid]Tree
)

// BuildTable builds a process table from the processes currently alive.
// Processes that disappear mid scan are skipped.
func BuildTable() (Table, error) {
	pids, err := getPids()
	if err != nil {
		return nil, err
	}

	tb := make(Table, len(pids))
	for _, pid := range pids {
		id, err := pid.id()
		if err != nil {
			continue // process exited between enumeration and inspection
		}
		tb[pid] = id
	}

	return tb, nil
}

// BuildTree organizes a process table into a hierarchy by parent.
func BuildTree(tb Table) Tree {
	tr := Tree{}

	for pid, id := range tb {
		var ancestors []Pid
		for pid := id.ppid; pid > 1; pid = tb[pid].ppid {
			if _, ok := tb[pid]; !ok {
				break
			}
			ancestors = append([]Pid{pid}, ancestors...)
		}
		addPid(tr, append(ancestors, pid))
	}

	return tr
}

func addPid(tr Tree, ancestors []Pid) {
	if len(ancestors) == 0 {
		return
	}
	if _, ok := tr[ancestors[0]]; !ok {
		tr[ancestors[0]] = Tree{}
	}
	addPid(tr[ancestors[0]], ancestors[1:])
}

// FindTree finds the process tree parented by a specific process.
func FindTree(tr Tree, parent Pid) Tree {
	for pid, tr := range tr {
		if pid == parent {
			return tr
		}
		if tr = FindTree(tr, parent); tr != nil {
			return tr
		}
	}

	return nil
}

// FlatTree flattens a process tree into a list of pids, ordered by pid at
// each level so that repeated walks of the same tree report the same order.
func FlatTree(tr Tree) []Pid {
	var flat []Pid

	pids := make([]Pid, 0, len(tr))
	for pid := range tr {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	for _, pid := range pids {
		flat = append(flat, pid)
		flat = append(flat, FlatTree(tr[pid])...)
	}
	return flat
}

// Descendants reports the identities of all live descendants of a process,
// excluding the process itself. The identities come from the same stat
// reads that built the table, so each carries the starttime fingerprint
// current for this scan. An error reports that the process table scan
// itself failed; the caller discards the polling tick.
func Descendants(root Pid) ([]Id, error) {
	tb, err := BuildTable()
	if err != nil {
		return nil, err
	}
	pids := FlatTree(FindTree(BuildTree(tb), root))
	ids := make([]Id, len(pids))
	for i, pid := range pids {
		ids[i] = tb[pid]
	}
	return ids, nil
}
