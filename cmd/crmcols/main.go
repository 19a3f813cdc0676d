// Package main provides the CLI entrypoint for crmcols.
//
// crmcols discovers the columns of a CRM sample record and manages the
// column selections users save per sheet:
//   - discover: list the columns of one or more sample records
//   - prefs get | save | scope: read and write saved selections
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
