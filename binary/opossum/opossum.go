// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package opossum provides utilities for writing OpossumUI documents to the
// filesystem.
package opossum

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"

	"github.com/rnjudge/tern/converter/opossum"
)

type writeFun func(doc *opossum.Document, w io.Writer) error

// Writer functions keyed by output format. OpossumUI opens both plain and
// gzipped JSON input files.
var writers = map[string]writeFun{
	"opossum-json":    writeJSON,
	"opossum-json-gz": writeGzippedJSON,
}

// SupportedFormats returns the known output format names, sorted.
func SupportedFormats() []string {
	return slices.Sorted(maps.Keys(writers))
}

// Write writes an OpossumUI document into a file in the given format.
func Write(doc *opossum.Document, path string, format string) error {
	writeFun, ok := writers[format]
	if !ok {
		return fmt.Errorf("%q is not a valid OpossumUI output format", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return multierr.Append(writeFun(doc, f), f.Close())
}

func writeJSON(doc *opossum.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeGzippedJSON(doc *opossum.Document, w io.Writer) error {
	gz := gzip.NewWriter(w)
	return multierr.Append(writeJSON(doc, gz), gz.Close())
}
