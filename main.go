// Copyright © 2025 The Gomon Project.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zosmac/gocore"

	"github.com/zosmac/gomlock/monitor"
	"github.com/zosmac/gomlock/report"
	"github.com/zosmac/gomlock/rlimit"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	fmt.Println("Mlock Monitor for `go test`")
	fmt.Println("===========================")

	soft, hard, err := rlimit.Memlock()
	if err != nil {
		gocore.Error("memlock limits", err).Warn()
		fmt.Println("Locked memory limit (soft, kb): unavailable")
		fmt.Println("Locked memory limit (hard, kb): unavailable")
	} else {
		fmt.Printf("Locked memory limit (soft, kb): %s\n", soft)
		fmt.Printf("Locked memory limit (hard, kb): %s\n", hard)
	}

	records := report.New()

	if flags.port != 0 {
		serve(ctx, records)
	}

	args := gocore.Flags.FlagSet.Args()
	if len(args) == 0 {
		args = []string{"./..."}
	}
	m := monitor.New(records, monitor.Command{
		Path: "go",
		Args: append([]string{"test"}, args...),
	})

	fmt.Print("\nRunning `go test` ... ")
	result, err := m.Run(ctx)
	if err != nil {
		// launch failure or operator abort: nothing ran, no table
		fmt.Println()
		return gocore.Error("go test", err)
	}
	fmt.Println("done!")

	switch flags.format {
	case "yaml":
		doc, err := records.Yaml()
		if err != nil {
			return gocore.Error("report", err)
		}
		fmt.Print(doc)
	default:
		fmt.Println(records.Table())
	}

	fmt.Println("\nOutput `go test`")
	fmt.Println("================")
	fmt.Printf("%s\n", result.Output)

	if result.ExitCode != 0 {
		// mirror the test run's exit code for automation
		os.Exit(result.ExitCode)
	}
	return nil
}
