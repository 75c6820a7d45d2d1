// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteReport persists a generated report under the case's dispute-focus
// subdirectory, named with a second-resolution timestamp. Existing reports
// are never overwritten or deleted; runs within the same second colliding on
// a filename is an accepted hazard of the interactive usage pattern.
func WriteReport(caseDir, content string) (string, error) {
	return writeReportAt(caseDir, content, time.Now())
}

func writeReportAt(caseDir, content string, now time.Time) (string, error) {
	focusDir := filepath.Join(caseDir, focusDirName)
	if err := os.MkdirAll(focusDir, 0o755); err != nil {
		return "", fmt.Errorf("creating dispute focus directory: %w", err)
	}

	path := filepath.Join(focusDir, reportPrefix+now.Format("20060102150405")+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
