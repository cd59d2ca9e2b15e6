// Copyright © 2025 The Gomon Project.

package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zosmac/gomlock/report"
)

type (
	// prometheusCollector complies with the Prometheus Collector interface,
	// exposing the running peak records while the supervised command runs.
	prometheusCollector struct {
		records *report.Records
	}
)

var (
	// maxLockedDesc describes the peak locked memory gauge.
	maxLockedDesc = prometheus.NewDesc(
		"gomlock_process_max_locked_kilobytes",
		"Peak locked memory observed for the process name.",
		[]string{"name"},
		nil,
	)
)

// Describe returns metric descriptions for prometheusCollector.
func (c *prometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- maxLockedDesc
}

// Collect returns the current state of all metrics to Prometheus.
func (c *prometheusCollector) Collect(ch chan<- prometheus.Metric) {
	for _, row := range c.records.Rows() {
		ch <- prometheus.MustNewConstMetric(
			maxLockedDesc,
			prometheus.GaugeValue,
			float64(row.MaxLockedKb),
			row.Name,
		)
	}
}
