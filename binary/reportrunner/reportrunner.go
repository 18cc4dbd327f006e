// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package reportrunner provides the main function for generating OpossumUI
// reports with the Tern binary.
package reportrunner

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rnjudge/tern/artifact/image"
	"github.com/rnjudge/tern/binary/cli"
	"github.com/rnjudge/tern/converter/opossum"
	"github.com/rnjudge/tern/log"
	"github.com/rnjudge/tern/version"
)

// RunReport generates a report for each image model given in the CLI flags
// and returns the exit code passed to os.Exit() in the main binary. Images
// are processed concurrently; each run is an independent pure pass over its
// model.
func RunReport(flags *cli.Flags) int {
	if flags.PrintVersion {
		log.Infof("Tern report generator v%s", version.ReportVersion)
		return 0
	}

	if flags.Verbose {
		log.SetLogger(&log.DefaultLogger{Verbose: true})
	}

	cfg := flags.GetOpossumConfig()
	multi := len(flags.Inputs) > 1

	var g errgroup.Group
	for i, input := range flags.Inputs {
		g.Go(func() error {
			img, err := image.FromFile(input)
			if err != nil {
				return fmt.Errorf("loading image model %s: %w", input, err)
			}
			log.Infof("Generating OpossumUI document for %s (%d layers)", img.Name, len(img.Layers))
			logPackages(img)

			doc := opossum.ToOpossum(img, cfg)

			var tag string
			if multi {
				tag = pathTag(img.Name)
				if tag == "" {
					tag = fmt.Sprintf("%03d", i)
				}
			}
			return flags.WriteReport(doc, tag)
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("Report generation failed: %v", err)
		return 1
	}
	return 0
}

// logPackages lists the scanned packages in verbose mode.
func logPackages(img *image.Image) {
	for _, layer := range img.Layers {
		for _, pkg := range layer.Packages {
			log.Debugf("%s: %s", layer.Path(), pkg.PURL())
		}
	}
}

// pathTag derives a file name fragment from an image name.
func pathTag(name string) string {
	return strings.NewReplacer("/", "-", ":", "-", "@", "-").Replace(name)
}
