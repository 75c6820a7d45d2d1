// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteReport_PathAndContent(t *testing.T) {
	caseDir := t.TempDir()

	path, err := WriteReport(caseDir, "# 报告")
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(caseDir, focusDirName) {
		t.Errorf("report written to %q, want %s subdirectory", path, focusDirName)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, reportPrefix) || !strings.HasSuffix(base, ".md") {
		t.Errorf("report name = %q, want %s<timestamp>.md", base, reportPrefix)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# 报告" {
		t.Errorf("report content = %q", data)
	}
}

func TestWriteReport_DistinctTimestamps(t *testing.T) {
	caseDir := t.TempDir()
	t1 := time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local)
	t2 := t1.Add(2 * time.Second)

	p1, err := writeReportAt(caseDir, "first", t1)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := writeReportAt(caseDir, "second", t2)
	if err != nil {
		t.Fatal(err)
	}
	if p1 == p2 {
		t.Fatalf("runs more than a second apart must not collide: %q", p1)
	}

	// Both artifacts survive: nothing is overwritten.
	for path, want := range map[string]string{p1: "first", p2: "second"} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", path, data, want)
		}
	}
}

func TestWriteReport_TimestampFormat(t *testing.T) {
	caseDir := t.TempDir()
	now := time.Date(2026, 8, 24, 9, 5, 7, 0, time.Local)

	path, err := writeReportAt(caseDir, "x", now)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != reportPrefix+"20260824090507.md" {
		t.Errorf("report name = %q, want 14-digit timestamp", filepath.Base(path))
	}
}
