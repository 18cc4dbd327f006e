// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package content renders the notices collected during scanning into the
// free-text blocks embedded in generated reports.
package content

import (
	"strings"

	"github.com/rnjudge/tern/artifact/image"
)

// PrintNotices formats one notice origin: the origin string prefixed with
// originPrefix and terminated by a colon, followed by one line per notice,
// each prefixed with noticePrefix.
func PrintNotices(origin image.NoticeOrigin, originPrefix, noticePrefix string) string {
	var b strings.Builder
	b.WriteString(originPrefix)
	b.WriteString(origin.Origin)
	b.WriteString(":\n")
	for _, n := range origin.Notices {
		b.WriteString(noticePrefix)
		b.WriteString(n.Level)
		b.WriteString(": ")
		b.WriteString(n.Message)
		b.WriteString("\n")
	}
	return b.String()
}
