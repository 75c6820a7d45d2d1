// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaterialFile is one discovered material file. Content is set only for
// decoded (content-extension) files; listing-only files keep Content empty.
type MaterialFile struct {
	Source  string
	Name    string
	Path    string
	Content string
	Decoded bool
}

// MaterialSource groups the files contributed by one party subdirectory,
// or by the materials directory itself in single-party mode.
type MaterialSource struct {
	Label string
	Files []MaterialFile
}

// MaterialSet is the result of material discovery for one case.
type MaterialSet struct {
	Sources    []MaterialSource
	MultiParty bool
}

// FileCount returns the total number of discovered files across all sources.
func (s *MaterialSet) FileCount() int {
	n := 0
	for _, src := range s.Sources {
		n += len(src.Files)
	}
	return n
}

// Records returns the decoded materials formatted for prompt assembly,
// one entry per decoded file: 【label】name followed by the content.
func (s *MaterialSet) Records() []string {
	var records []string
	for _, src := range s.Sources {
		for _, f := range src.Files {
			if !f.Decoded {
				continue
			}
			records = append(records, fmt.Sprintf("【%s】%s:\n%s", f.Source, f.Name, f.Content))
		}
	}
	return records
}

// CollectMaterials discovers the material files under materialsDir. When the
// directory contains subdirectories, each becomes one source (multi-party
// mode); otherwise a single source labeled 通用材料 is built from the files
// directly in the directory. Subdirectory and file names are sorted
// lexicographically so material order, and therefore prompt content, is
// deterministic across platforms (glob order is not).
func (o *Orchestrator) CollectMaterials(materialsDir string) (*MaterialSet, error) {
	entries, err := os.ReadDir(materialsDir)
	if err != nil {
		return nil, fmt.Errorf("reading materials directory: %w", err)
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		}
	}
	sort.Strings(subdirs)

	set := &MaterialSet{MultiParty: len(subdirs) > 0}

	if set.MultiParty {
		logf("检测到多方当事人材料")
		for _, sub := range subdirs {
			files := o.collectDir(filepath.Join(materialsDir, sub), sub)
			if len(files) == 0 {
				continue
			}
			set.Sources = append(set.Sources, MaterialSource{Label: sub, Files: files})
			logf("- 读取 %s 的材料 %d 个", sub, len(files))
		}
	} else {
		files := o.collectDir(materialsDir, genericLabel)
		if len(files) > 0 {
			set.Sources = append(set.Sources, MaterialSource{Label: genericLabel, Files: files})
			logf("- 读取%s %d 个", genericLabel, len(files))
		}
	}

	if set.FileCount() == 0 {
		return nil, ErrNoMaterials
	}
	logf("共读取 %d 个材料文件", set.FileCount())
	return set, nil
}

// collectDir gathers the recognized files directly inside dir, decoding the
// content extensions and listing the rest.
func (o *Orchestrator) collectDir(dir, label string) []MaterialFile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []MaterialFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		path := filepath.Join(dir, name)
		switch {
		case containsExt(o.cfg.ContentExtensions, ext):
			files = append(files, MaterialFile{
				Source:  label,
				Name:    name,
				Path:    path,
				Content: ReadTextFile(path),
				Decoded: true,
			})
		case containsExt(o.cfg.ListingExtensions, ext):
			files = append(files, MaterialFile{Source: label, Name: name, Path: path})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

func containsExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
