// Package main provides the activityresult CLI.
//
// activityresult scans Go packages for type declarations annotated with
// //activityresult:result or //activityresult:results directives and writes a
// <Name>Result companion next to each of them. The companion moves the declared
// fields in and out of a bundle.Intent.
//
// Commands:
//   - gen: write companion files
//   - check: fail when companion files are missing or out of date
//   - analyze: print the resolved field model as YAML
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
