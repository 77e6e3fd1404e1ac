// Package main provides the entry point for the minigrep CLI.
package main

import (
	"io"
	"os"

	"github.com/Aman-CERP/minigrep/cmd/minigrep/cmd"
	"github.com/Aman-CERP/minigrep/internal/output"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. Errors are
// reported on stderr, as JSON when --format json was parsed.
func run(args []string, stdout, stderr io.Writer) int {
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		w := output.NewAuto(stderr)
		if format, _ := root.Flags().GetString("format"); isJSON(format) {
			w.ReportJSON(err)
		} else {
			w.Report(err)
		}
		return 1
	}
	return 0
}

func isJSON(format string) bool {
	f, err := output.ParseFormat(format)
	return err == nil && f == output.FormatJSON
}
