package main

import (
	"fmt"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string.
func versionString(prog string) string {
	return fmt.Sprintf("%s %s (%s, %s, %s)", prog, version, commit[:min(7, len(commit))], date, runtime.Version())
}
