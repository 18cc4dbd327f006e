// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

package image

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a scanned image model from a file. Files with a .yaml or
// .yml extension are parsed as YAML, everything else as JSON.
func FromFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(f)
	default:
		return FromJSON(f)
	}
}

// FromJSON parses a scanned image model from JSON.
func FromJSON(r io.Reader) (*Image, error) {
	var img Image
	dec := json.NewDecoder(r)
	if err := dec.Decode(&img); err != nil {
		return nil, fmt.Errorf("parsing image model: %w", err)
	}
	return &img, nil
}

// FromYAML parses a scanned image model from YAML.
func FromYAML(r io.Reader) (*Image, error) {
	var img Image
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&img); err != nil {
		return nil, fmt.Errorf("parsing image model: %w", err)
	}
	return &img, nil
}
