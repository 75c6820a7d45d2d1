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

// ResolveCase maps a human-readable case name to its directory, trying in
// order: the marker-prefixed name under the cases directory, the bare name,
// and the bare name under the base directory's 案例 folder. The first
// existing directory wins, so a name never resolves to more than one
// directory even when several variants exist.
func (o *Orchestrator) ResolveCase(name string) (string, error) {
	candidates := []string{
		filepath.Join(o.cfg.CasesDir, casePrefix+name),
		filepath.Join(o.cfg.CasesDir, name),
		filepath.Join(o.cfg.BaseDir, casesDirName, name),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrCaseNotFound, name)
}

// SelectCase resolves a case and logs the selection.
func (o *Orchestrator) SelectCase(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: (empty name)", ErrCaseNotFound)
	}
	dir, err := o.ResolveCase(name)
	if err != nil {
		return "", err
	}
	logf("已选择案件: %q (%s)", name, dir)
	return dir, nil
}

// ListCases returns the case names in the cases directory, marker-prefixed
// folders first (prefix stripped), then unprefixed folders, each group
// sorted by name.
func (o *Orchestrator) ListCases() ([]string, error) {
	entries, err := os.ReadDir(o.cfg.CasesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cases directory: %w", err)
	}

	var prefixed, plain []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, casePrefix) {
			prefixed = append(prefixed, strings.TrimPrefix(name, casePrefix))
		} else {
			plain = append(plain, name)
		}
	}
	sort.Strings(prefixed)
	sort.Strings(plain)
	return append(prefixed, plain...), nil
}
