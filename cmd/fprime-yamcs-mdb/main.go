// Package main provides the CLI entrypoint for fprime-yamcs-mdb.
//
// fprime-yamcs-mdb converts an F Prime deployment dictionary and packet
// layout into YAMCS mission database worksheets:
//   - Resolves the dictionary type graph (structs, arrays, enums, sized strings)
//   - Joins telemetry packets with channel types, expanding array channels
//   - Keeps commands whose arguments are array-free and reports the rest
//   - Writes one CSV worksheet per mission database sheet
package main

import (
	"os"

	"fprime-yamcs-mdb/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
