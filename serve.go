// Copyright © 2025 The Gomon Project.

package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"

	"github.com/zosmac/gomlock/report"
)

// serve starts the Prometheus metrics endpoint for the run in progress.
func serve(ctx context.Context, records *report.Records) {
	// private registry, as the default registry adds Go runtime metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(&prometheusCollector{records: records})

	mux := http.NewServeMux()
	mux.Handle(
		"/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	server := &http.Server{
		Addr:    "localhost:" + strconv.Itoa(flags.port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background()) // let server perform cleanup with timeout
	}()

	go func() {
		gocore.Error("metrics server", nil, map[string]string{
			"listen": "http://" + server.Addr,
		}).Info()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			gocore.Error("metrics server", err).Warn()
		}
	}()
}
