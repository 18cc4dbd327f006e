// Copyright (c) 2026 VMware, Inc. All Rights Reserved.
// SPDX-License-Identifier: BSD-2-Clause

// Package version records the Tern release version and resolves the
// identifier used as the project id in generated reports.
package version

import (
	"os/exec"
	"strings"
)

// ReportVersion is the version of the report generator.
const ReportVersion = "2.12.1"

// GitRevOrVersion returns how the running build is identified and the
// identifier itself: ("git", <HEAD revision>) when run from a git checkout,
// otherwise ("dist", ReportVersion).
func GitRevOrVersion() (string, string) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "dist", ReportVersion
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "dist", ReportVersion
	}
	return "git", rev
}
