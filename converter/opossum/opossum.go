// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package opossum converts a scanned image model into an input document for
// the OpossumUI attribution review tool
// (https://github.com/opossum-tool/OpossumUI). The document's field names
// and nesting are a compatibility contract with OpossumUI and must not
// change.
package opossum

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rnjudge/tern/artifact/image"
	"github.com/rnjudge/tern/report/content"
	"github.com/rnjudge/tern/version"
)

const (
	// documentConfidence is the fixed confidence score attached to every
	// attribution Tern produces.
	documentConfidence = 70
	// noneSentinel is the placeholder OpossumUI shows for optional package
	// metadata the scanner did not find.
	noneSentinel = "NONE"

	layerSourceName = "Tern:Layer"
	packagesDir     = "Packages"
	timestampFormat = "2006-01-02T15:04:05Z"
)

// Document is the top-level OpossumUI input structure.
type Document struct {
	Metadata                Metadata               `json:"metadata"`
	Resources               FileTree               `json:"resources"`
	ExternalAttributions    map[string]Attribution `json:"externalAttributions"`
	ResourcesToAttributions map[string][]string    `json:"resourcesToAttributions"`
	AttributionBreakpoints  []string               `json:"attributionBreakpoints"`
}

// Metadata carries project-level information about the report.
type Metadata struct {
	ProjectID        string `json:"projectId"`
	ProjectTitle     string `json:"projectTitle"`
	FileCreationDate string `json:"fileCreationDate"`
}

// Source names the producer of an attribution.
type Source struct {
	Name               string `json:"name"`
	DocumentConfidence int    `json:"documentConfidence"`
}

// Attribution is one provenance record. Layer attributions carry only the
// source and a comment; package attributions additionally carry the package
// coordinates, flattened into the same JSON object.
type Attribution struct {
	Source  Source `json:"source"`
	Comment string `json:"comment"`
	*PackageAttribution
}

// PackageAttribution holds the package-level fields of an attribution.
type PackageAttribution struct {
	PackageName    string `json:"packageName"`
	PackageVersion string `json:"packageVersion"`
	URL            string `json:"url"`
	LicenseName    string `json:"licenseName"`
	Copyright      string `json:"copyright"`
}

// Config describes custom settings applied to the generated document.
type Config struct {
	// ProjectID overrides the document's project identifier. When empty, the
	// git revision or release version of the generator is used.
	ProjectID string
}

// ToOpossum converts a scanned image into an OpossumUI input document. The
// conversion is a pure pass over the image model: it neither mutates the
// image nor keeps state between calls.
func ToOpossum(img *image.Image, c Config) *Document {
	attrs, resourceAttrs, breakpoints := aggregateAttributions(img)

	// The resource tree covers every attributed path plus the breakpoint
	// directories, so breakpoints exist in the tree even when no attribution
	// anchors at them.
	paths := make([]string, 0, len(resourceAttrs)+len(breakpoints))
	paths = append(paths, slices.Sorted(maps.Keys(resourceAttrs))...)
	paths = append(paths, breakpoints...)

	projectID := c.ProjectID
	if projectID == "" {
		_, projectID = version.GitRevOrVersion()
	}

	return &Document{
		Metadata: Metadata{
			ProjectID:        projectID,
			ProjectTitle:     fmt.Sprintf("Tern report for %s", img.Name),
			FileCreationDate: time.Now().UTC().Format(timestampFormat),
		},
		Resources:               fileTreeFromPaths(paths),
		ExternalAttributions:    attrs,
		ResourcesToAttributions: resourceAttrs,
		AttributionBreakpoints:  breakpoints,
	}
}

// aggregateAttributions walks the image's layers and packages once and
// returns the attribution registry, the path to attribution-id index and the
// sorted list of breakpoint directories.
//
// A layer's own attribution is anchored at its packages-root directory so
// that the layer's provenance shows up alongside its packages. The packages
// root and each per-ecosystem directory below it are breakpoints: files
// below them may belong to different packages, so attribution inference must
// not cross them.
func aggregateAttributions(img *image.Image) (map[string]Attribution, map[string][]string, []string) {
	attrs := make(map[string]Attribution)
	resources := make(map[string][]string)
	breakpoints := make(map[string]bool)

	for _, layer := range img.Layers {
		layerID := uuid.New().String()
		packagesRoot := layer.Path() + divider + packagesDir + divider
		resources[packagesRoot] = append(resources[packagesRoot], layerID)
		breakpoints[packagesRoot] = true
		attrs[layerID] = Attribution{
			Source:  Source{Name: layerSourceName, DocumentConfidence: documentConfidence},
			Comment: layer.String(),
		}

		for _, pkg := range layer.Packages {
			pkgID := uuid.New().String()
			ecosystemDir := packagesRoot + pkg.Source + divider
			pkgDir := ecosystemDir + pkg.Name + divider
			breakpoints[ecosystemDir] = true
			resources[pkgDir] = append(resources[pkgDir], pkgID)

			for _, f := range pkg.Files {
				abs := layer.Path() + divider + f
				resources[abs] = append(resources[abs], pkgID)
			}

			var comment strings.Builder
			for _, origin := range pkg.Origins {
				comment.WriteString(content.PrintNotices(origin, "", "\t"))
			}

			attrs[pkgID] = Attribution{
				Source:  Source{Name: "Tern:" + pkg.Source, DocumentConfidence: documentConfidence},
				Comment: comment.String(),
				PackageAttribution: &PackageAttribution{
					PackageName:    pkg.Name,
					PackageVersion: orNone(pkg.Version),
					URL:            pkg.ProjURL,
					LicenseName:    orNone(pkg.ResolvedLicense()),
					Copyright:      orNone(pkg.Copyright),
				},
			}
		}
	}

	return attrs, resources, slices.Sorted(maps.Keys(breakpoints))
}

// orNone substitutes the OpossumUI placeholder for missing metadata.
func orNone(s string) string {
	if s == "" {
		return noneSentinel
	}
	return s
}
