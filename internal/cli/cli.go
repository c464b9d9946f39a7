package cli

import (
	"fmt"
	"io"
	"os"
)

// MainWithArgs runs the CLI with explicit args and output streams.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/linguaspark.
func Main() int { return MainWithArgs(os.Args[1:], os.Stdout, os.Stderr) }
