// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rnjudge/tern/converter/opossum"
)

func TestValidateFlags(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		flags   *Flags
		wantErr error
	}{
		{
			desc: "Valid config",
			flags: &Flags{
				Inputs: []string{"image.json"},
				Output: []string{"opossum-json=report.json", "opossum-json-gz=report.json.gz"},
			},
			wantErr: nil,
		},
		{
			desc:    "Only --version set",
			flags:   &Flags{PrintVersion: true},
			wantErr: nil,
		},
		{
			desc:    "Input flag missing",
			flags:   &Flags{Output: []string{"opossum-json=report.json"}},
			wantErr: cmpopts.AnyError,
		},
		{
			desc:    "Output flag missing",
			flags:   &Flags{Inputs: []string{"image.json"}},
			wantErr: cmpopts.AnyError,
		},
		{
			desc: "Output missing the path",
			flags: &Flags{
				Inputs: []string{"image.json"},
				Output: []string{"opossum-json"},
			},
			wantErr: cmpopts.AnyError,
		},
		{
			desc: "Unknown output format",
			flags: &Flags{
				Inputs: []string{"image.json"},
				Output: []string{"opossum-xml=report.xml"},
			},
			wantErr: cmpopts.AnyError,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			err := ValidateFlags(tc.flags)
			if diff := cmp.Diff(tc.wantErr, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("ValidateFlags(%v) returned unexpected error, diff (-want +got):\n%s", tc.flags, diff)
			}
		})
	}
}

func TestTaggedPath(t *testing.T) {
	testCases := []struct {
		path string
		tag  string
		want string
	}{
		{path: "report.json", tag: "alpine-3.19", want: "report.alpine-3.19.json"},
		{path: "report.json.gz", tag: "alpine-3.19", want: "report.alpine-3.19.json.gz"},
		{path: filepath.Join("out", "report.json"), tag: "a", want: filepath.Join("out", "report.a.json")},
		{path: "report", tag: "a", want: "report.a"},
	}

	for _, tc := range testCases {
		if got := taggedPath(tc.path, tc.tag); got != tc.want {
			t.Errorf("taggedPath(%q, %q) = %q, want %q", tc.path, tc.tag, got, tc.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	doc := &opossum.Document{
		Metadata: opossum.Metadata{ProjectID: "test-project"},
	}
	flags := &Flags{
		Inputs: []string{"image.json"},
		Output: []string{"opossum-json=" + filepath.Join(dir, "report.json")},
	}

	if err := flags.WriteReport(doc, "tagged"); err != nil {
		t.Fatalf("WriteReport(%v, tagged) returned an error: %v", doc, err)
	}

	want := filepath.Join(dir, "report.tagged.json")
	if _, err := os.Stat(want); errors.Is(err, os.ErrNotExist) {
		t.Errorf("WriteReport(%v, tagged) did not create %s", doc, want)
	}
}
