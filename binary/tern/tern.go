// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// The tern command generates OpossumUI attribution review documents from
// scanned container image models.
package main

import (
	"flag"
	"os"

	"github.com/rnjudge/tern/binary/cli"
	"github.com/rnjudge/tern/binary/reportrunner"
	"github.com/rnjudge/tern/log"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var subcommand string
	if len(args) >= 2 {
		subcommand = args[1]
	}
	switch subcommand {
	case "report":
		flags, err := parseFlags(args[2:])
		if err != nil {
			log.Errorf("Error parsing CLI args: %v", err)
			return 1
		}
		return reportrunner.RunReport(flags)
	default:
		// Assume 'report' if subcommand is not recognized/specified.
		flags, err := parseFlags(args[1:])
		if err != nil {
			log.Errorf("Error parsing CLI args: %v", err)
			return 1
		}
		return reportrunner.RunReport(flags)
	}
}

func parseFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("tern", flag.ExitOnError)
	var inputs cli.Array
	fs.Var(&inputs, "i", "The path of a scanned image model file (JSON, or YAML for .yaml/.yml). Repeat to report on multiple images")
	var output cli.Array
	fs.Var(&output, "o", "The path of the report outputs in various formats, e.g. -o opossum-json=report.json -o opossum-json-gz=report.json.gz")
	projectID := fs.String("project-id", "", "The 'metadata.projectId' field for the output document. Defaults to the git revision or release version")
	verbose := fs.Bool("verbose", false, "Enable debug logs")
	printVersion := fs.Bool("version", false, "Print the version of the report generator")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	flags := &cli.Flags{
		Inputs:       inputs,
		Output:       output,
		ProjectID:    *projectID,
		Verbose:      *verbose,
		PrintVersion: *printVersion,
	}
	if err := cli.ValidateFlags(flags); err != nil {
		return nil, err
	}
	return flags, nil
}
