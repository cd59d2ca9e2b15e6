// Copyright © 2025 The Gomon Project.

package report

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// columnBuffer is the number of spaces between table columns.
const columnBuffer = 8

const (
	nameHeading = "Process Name"
	peakHeading = "Max Locked Memory (kb)"
)

type (
	// Row reports the peak locked memory observed for a process name.
	Row struct {
		Name        string `yaml:"name" json:"name"`
		MaxLockedKb uint64 `yaml:"max_locked_kb" json:"max_locked_kb"`
	}

	// Records accumulates the peak locked memory sample per process name,
	// preserving the order in which names were first observed. The monitor
	// loop is the only writer; the lock exists for the metrics server,
	// which reads while the supervised command is still running.
	Records struct {
		mu    sync.RWMutex
		order []string
		peaks map[string]uint64
	}
)

// New creates an empty set of peak memory records.
func New() *Records {
	return &Records{
		peaks: map[string]uint64{},
	}
}

// Update folds a locked memory sample into the peak record for a name.
// Peaks never decrease; two processes sharing a name merge into one record.
func (r *Records) Update(name string, kb uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if peak, ok := r.peaks[name]; !ok {
		r.order = append(r.order, name)
		r.peaks[name] = kb
	} else if kb > peak {
		r.peaks[name] = kb
	}
}

// Rows reports the records in first-observed order.
// An empty run yields an empty slice, not an error.
func (r *Records) Rows() []Row {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]Row, len(r.order))
	for i, name := range r.order {
		rows[i] = Row{Name: name, MaxLockedKb: r.peaks[name]}
	}
	return rows
}

// Table formats the records as an aligned two column table. Widths count
// runes, not bytes, so multibyte binary names keep the columns aligned.
func (r *Records) Table() string {
	rows := r.Rows()

	peakColumn := utf8.RuneCountInString(nameHeading) + columnBuffer
	for _, row := range rows {
		if n := utf8.RuneCountInString(row.Name) + columnBuffer; n > peakColumn {
			peakColumn = n
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(nameHeading)
	sb.WriteString(strings.Repeat(" ", peakColumn-utf8.RuneCountInString(nameHeading)))
	sb.WriteString(peakHeading)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(nameHeading)))
	sb.WriteString(strings.Repeat(" ", peakColumn-utf8.RuneCountInString(nameHeading)))
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(peakHeading)))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(row.Name)
		sb.WriteString(strings.Repeat(" ", peakColumn-utf8.RuneCountInString(row.Name)))
		sb.WriteString(strconv.FormatUint(row.MaxLockedKb, 10))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("=", peakColumn+utf8.RuneCountInString(peakHeading)))
	return sb.String()
}

// Yaml formats the records as a yaml document, preserving row order.
func (r *Records) Yaml() (string, error) {
	buf, err := yaml.Marshal(r.Rows())
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
