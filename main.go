// aicredit applies credit ledger and wallet program transactions to a local account database.
package main

import (
	"fmt"
	"os"

	"github.com/aicredit/go-aicredit/cmd"
)

var (
	version string
	commit  string
	branch  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
