// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package cli defines the structures to store the CLI flags used by the
// report generator binary.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	binopossum "github.com/rnjudge/tern/binary/opossum"
	"github.com/rnjudge/tern/converter/opossum"
	"github.com/rnjudge/tern/log"
)

// Array is a type to be passed to flag.Var that supports arrays passed as
// repeated flags, e.g. ./tern -i a.json -i b.json.
type Array []string

func (i *Array) String() string {
	return strings.Join(*i, ",")
}

// Set gets called whenever a new instance of a flag is read during CLI arg
// parsing. For example, in the case of -i foo -i bar the library will call
// arr.Set("foo") then arr.Set("bar").
func (i *Array) Set(value string) error {
	*i = append(*i, strings.TrimSpace(value))
	return nil
}

// Get returns the underlying []string value stored by this flag struct.
func (i *Array) Get() any {
	return i
}

// Flags contains a field for all the cli flags that can be set.
type Flags struct {
	// Inputs are the scanned image model files to report on.
	Inputs Array
	// Output holds format=path pairs, e.g. opossum-json=report.json.
	Output       Array
	ProjectID    string
	Verbose      bool
	PrintVersion bool
}

// ValidateFlags validates the passed command line flags.
func ValidateFlags(flags *Flags) error {
	if flags.PrintVersion {
		return nil
	}
	if len(flags.Inputs) == 0 {
		return errors.New("at least one -i image model file needs to be set")
	}
	if len(flags.Output) == 0 {
		return errors.New("at least one -o output needs to be set")
	}
	if err := validateOutput(flags.Output); err != nil {
		return fmt.Errorf("-o %w", err)
	}
	return nil
}

func validateOutput(output []string) error {
	for _, item := range output {
		o := strings.Split(item, "=")
		if len(o) != 2 {
			return errors.New("invalid output format, should follow a format like -o opossum-json=report.json")
		}
		oFormat := o[0]
		if !slices.Contains(binopossum.SupportedFormats(), oFormat) {
			return fmt.Errorf("output format %q not recognized, supported formats are %v", oFormat, binopossum.SupportedFormats())
		}
	}
	return nil
}

// GetOpossumConfig constructs a document config from the provided CLI flags.
func (f *Flags) GetOpossumConfig() opossum.Config {
	return opossum.Config{ProjectID: f.ProjectID}
}

// WriteReport writes a generated document to the files specified by the CLI
// flags. A non-empty tag is inserted before the file extension to keep
// per-image outputs apart in multi-image runs.
func (f *Flags) WriteReport(doc *opossum.Document, tag string) error {
	for _, item := range f.Output {
		oFormat, oPath, _ := strings.Cut(item, "=")
		if tag != "" {
			oPath = taggedPath(oPath, tag)
		}
		log.Infof("Writing OpossumUI document to %s", oPath)
		if err := binopossum.Write(doc, oPath, oFormat); err != nil {
			return err
		}
	}
	return nil
}

// taggedPath inserts tag before the first extension of the file name, so
// compound suffixes like .json.gz stay intact.
func taggedPath(path, tag string) string {
	base := filepath.Base(path)
	dot := strings.IndexByte(base, '.')
	if dot < 0 {
		return path + "." + tag
	}
	return filepath.Join(filepath.Dir(path), base[:dot]+"."+tag+base[dot:])
}
