// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

//go:embed templates/case_readme.md
var caseReadmeTemplate string

// CreateCase scaffolds a new case folder under the cases directory. When the
// workspace contains a sample case (案件：示例案件) it is copied as the
// template; otherwise a minimal layout is created from the embedded README.
// The README placeholders are rewritten with the new case's name, generated
// ID, and today's date.
func (o *Orchestrator) CreateCase(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("missing case name")
	}
	if err := os.MkdirAll(o.cfg.CasesDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cases directory: %w", err)
	}

	dest := filepath.Join(o.cfg.CasesDir, casePrefix+name)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("case %q already exists", name)
	}

	logf("正在创建案件: %q", name)

	template := filepath.Join(o.cfg.CasesDir, casePrefix+sampleCaseName)
	if info, err := os.Stat(template); err == nil && info.IsDir() {
		if err := copyTree(template, dest); err != nil {
			return "", fmt.Errorf("copying case template: %w", err)
		}
	} else {
		for _, sub := range []string{materialsDirName, focusDirName} {
			if err := os.MkdirAll(filepath.Join(dest, sub), 0o755); err != nil {
				return "", fmt.Errorf("scaffolding case: %w", err)
			}
		}
		if err := os.WriteFile(filepath.Join(dest, "README.md"), []byte(caseReadmeTemplate), 0o644); err != nil {
			return "", fmt.Errorf("scaffolding case: %w", err)
		}
	}

	if err := rewriteCaseReadme(filepath.Join(dest, "README.md"), name, time.Now()); err != nil {
		logf("warning: could not update case README: %v", err)
	}

	logf("案件 %q 创建成功: %s", name, dest)
	return dest, nil
}

// rewriteCaseReadme substitutes the template placeholders in a copied
// README. A missing README is not an error; template cases may not ship one.
func rewriteCaseReadme(path, name string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	content := string(data)
	content = strings.ReplaceAll(content, sampleCaseName, name)
	content = strings.ReplaceAll(content, "CASE001", newCaseID(now))
	content = strings.ReplaceAll(content, "2023-06-25", now.Format("2006-01-02"))
	return os.WriteFile(path, []byte(content), 0o644)
}

// newCaseID derives a short case identifier from the unix timestamp.
func newCaseID(now time.Time) string {
	s := strconv.FormatInt(now.Unix(), 10)
	return "CASE" + s[len(s)-6:]
}

// copyTree copies the directory tree at src to dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
