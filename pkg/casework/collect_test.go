// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectMaterials_MultiParty(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	writeFile(t, materials, "A/claim1.txt", []byte("one"))
	writeFile(t, materials, "A/claim2.txt", []byte("two"))
	writeFile(t, materials, "B/answer.md", []byte("three"))

	set, err := o.CollectMaterials(materials)
	if err != nil {
		t.Fatalf("CollectMaterials: %v", err)
	}
	if !set.MultiParty {
		t.Error("expected multi-party mode")
	}
	if len(set.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(set.Sources))
	}
	if set.Sources[0].Label != "A" || len(set.Sources[0].Files) != 2 {
		t.Errorf("source A = %q with %d files, want A with 2",
			set.Sources[0].Label, len(set.Sources[0].Files))
	}
	if set.Sources[1].Label != "B" || len(set.Sources[1].Files) != 1 {
		t.Errorf("source B = %q with %d files, want B with 1",
			set.Sources[1].Label, len(set.Sources[1].Files))
	}
	if set.FileCount() != 3 {
		t.Errorf("FileCount = %d, want 3", set.FileCount())
	}

	records := set.Records()
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if !strings.Contains(records[0], "【A】claim1.txt") || !strings.Contains(records[0], "one") {
		t.Errorf("first record = %q, want 【A】claim1.txt with content", records[0])
	}
}

func TestCollectMaterials_SingleParty(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	writeFile(t, materials, "contract.txt", []byte("条款"))

	set, err := o.CollectMaterials(materials)
	if err != nil {
		t.Fatalf("CollectMaterials: %v", err)
	}
	if set.MultiParty {
		t.Error("expected single-party mode")
	}
	if len(set.Sources) != 1 || set.Sources[0].Label != genericLabel {
		t.Fatalf("sources = %+v, want one %q source", set.Sources, genericLabel)
	}
	if got := set.Records(); len(got) != 1 || !strings.Contains(got[0], "【"+genericLabel+"】") {
		t.Errorf("Records = %v, want one generic-label record", got)
	}
}

func TestCollectMaterials_Empty(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	mkdir(t, materials)

	if _, err := o.CollectMaterials(materials); !errors.Is(err, ErrNoMaterials) {
		t.Errorf("CollectMaterials error = %v, want ErrNoMaterials", err)
	}
}

func TestCollectMaterials_UnrecognizedOnly(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	writeFile(t, materials, "photo.jpg", []byte{0xff, 0xd8})

	if _, err := o.CollectMaterials(materials); !errors.Is(err, ErrNoMaterials) {
		t.Errorf("CollectMaterials error = %v, want ErrNoMaterials", err)
	}
}

func TestCollectMaterials_ListingExtensionsNotDecoded(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	writeFile(t, materials, "scan.pdf", []byte("%PDF-1.4"))
	writeFile(t, materials, "note.txt", []byte("文本"))

	set, err := o.CollectMaterials(materials)
	if err != nil {
		t.Fatalf("CollectMaterials: %v", err)
	}
	if set.FileCount() != 2 {
		t.Errorf("FileCount = %d, want 2 (pdf listed)", set.FileCount())
	}
	records := set.Records()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (pdf not decoded)", len(records))
	}
	if !strings.Contains(records[0], "note.txt") {
		t.Errorf("record = %q, want the decoded txt file", records[0])
	}
}

func TestCollectMaterials_DeterministicOrder(t *testing.T) {
	o := newTestOrchestrator(t)
	materials := filepath.Join(o.cfg.BaseDir, materialsDirName)
	writeFile(t, materials, "b.txt", []byte("second"))
	writeFile(t, materials, "a.txt", []byte("first"))

	set, err := o.CollectMaterials(materials)
	if err != nil {
		t.Fatalf("CollectMaterials: %v", err)
	}
	files := set.Sources[0].Files
	if files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Errorf("file order = [%s %s], want lexicographic [a.txt b.txt]",
			files[0].Name, files[1].Name)
	}
}
