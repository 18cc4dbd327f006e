// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

package opossum

import (
	"strings"

	"github.com/rnjudge/tern/log"
)

// FileTree is the "resources" section of an OpossumUI document: a nested
// mapping keyed by single path segments. A directory maps to a nested
// FileTree, a regular file to the numeric marker 1.
type FileTree map[string]any

// fileMarker is the leaf value OpossumUI expects for regular files.
const fileMarker = 1

const divider = "/"

// fileTreeFromPaths compiles resource paths into a FileTree. A path ending
// in the separator denotes a directory, any other path a file. Every prefix
// of a path becomes an intermediate directory node. Nodes are created at
// most once and never overwritten, so a path conflicting with an earlier one
// keeps the earlier classification.
func fileTreeFromPaths(paths []string) FileTree {
	tree := FileTree{}
	for _, path := range paths {
		if path == divider {
			continue
		}
		segments := splitPath(path)
		if len(segments) == 0 {
			continue
		}
		isFile := !strings.HasSuffix(path, divider)

		cursor := tree
		for i, segment := range segments {
			last := i == len(segments)-1
			existing, ok := cursor[segment]
			if !ok {
				if last && isFile {
					cursor[segment] = fileMarker
					break
				}
				next := FileTree{}
				cursor[segment] = next
				cursor = next
				continue
			}
			if last {
				break
			}
			next, ok := existing.(FileTree)
			if !ok {
				// The same path was classified as both file and directory
				// across the inputs. Keep the file node.
				log.Warnf("resource %q conflicts with a file node at %q", path, divider+strings.Join(segments[:i+1], divider))
				break
			}
			cursor = next
		}
	}
	return tree
}

// splitPath splits on the separator and drops empty segments, collapsing
// leading, trailing and repeated separators.
func splitPath(path string) []string {
	segments := make([]string, 0, strings.Count(path, divider))
	for _, s := range strings.Split(path, divider) {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
