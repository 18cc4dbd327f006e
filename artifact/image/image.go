// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package image defines the scanned container image model that report
// generators consume. The model is produced by the scanning pipeline and is
// treated as a read-only snapshot: layers in image order, each carrying the
// packages found in it and the files those packages own.
package image

import (
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/package-url/packageurl-go"
)

// Image is one scanned container image.
type Image struct {
	// Name is the display name of the image, e.g. "debian:bookworm".
	Name   string   `json:"name" yaml:"name"`
	Layers []*Layer `json:"layers" yaml:"layers"`
}

// Layer is one filesystem diff of a container image, addressed by its
// zero-based position in the image.
type Layer struct {
	Index int `json:"index" yaml:"index"`
	// DiffID is the digest of the uncompressed layer tarball.
	DiffID digest.Digest `json:"diff_id,omitempty" yaml:"diff_id,omitempty"`
	// CreatedBy is the image config instruction that produced the layer.
	CreatedBy string     `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	Packages  []*Package `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// Path returns the canonical absolute path of the layer in generated
// reports, the zero-padded 3-digit layer index, e.g. "/002" for index 2.
func (l *Layer) Path() string {
	return fmt.Sprintf("/%03d", l.Index)
}

// String renders the layer for human consumption. It prefers the config
// instruction that created the layer, then the layer digest.
func (l *Layer) String() string {
	if l.CreatedBy != "" {
		return l.CreatedBy
	}
	if l.DiffID != "" {
		return string(l.DiffID)
	}
	return fmt.Sprintf("layer %d", l.Index)
}

// Package is one software package found in a layer.
type Package struct {
	// Source is the package manager ecosystem that reported the package,
	// e.g. "deb" or "pip".
	Source  string `json:"source" yaml:"source"`
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// License holds the declared license when the scanner found a single
	// one. Licenses holds the individual license strings otherwise; the two
	// fields are never both set.
	License   string   `json:"pkg_license,omitempty" yaml:"pkg_license,omitempty"`
	Licenses  []string `json:"pkg_licenses,omitempty" yaml:"pkg_licenses,omitempty"`
	Copyright string   `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	ProjURL   string   `json:"proj_url,omitempty" yaml:"proj_url,omitempty"`
	// Origins records where the package's metadata came from, with any
	// notices raised while collecting it.
	Origins []NoticeOrigin `json:"origins,omitempty" yaml:"origins,omitempty"`
	// Files are the paths the package owns, relative to the layer root.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
}

// ResolvedLicense collapses the two license representations into one string:
// the single license field when set, otherwise the concatenation of the
// license list. Returns "" when the package carries no license information.
func (p *Package) ResolvedLicense() string {
	if p.License != "" {
		return p.License
	}
	return strings.Join(p.Licenses, "")
}

// PURL returns a package URL identifying the package within its ecosystem.
func (p *Package) PURL() *packageurl.PackageURL {
	return packageurl.NewPackageURL(p.Source, "", p.Name, p.Version, nil, "")
}

// NoticeOrigin names a metadata source and the notices it raised.
type NoticeOrigin struct {
	Origin  string   `json:"origin_str" yaml:"origin_str"`
	Notices []Notice `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// Notice is one message raised while collecting package metadata.
type Notice struct {
	Message string `json:"message" yaml:"message"`
	// Level classifies the notice, e.g. "info", "warning" or "error".
	Level string `json:"level" yaml:"level"`
}
