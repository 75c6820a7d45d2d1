// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// IdentifyDisputes runs the dispute-focus pipeline for caseName:
// resolve the case directory, collect materials, assemble the prompt,
// generate the analysis, and write a timestamped report. It returns the
// report path. Aborts: unresolved case, missing materials directory, zero
// materials, missing configured methodology, and report-write failure.
// Generation failure never aborts; it yields a fallback report instead.
func (o *Orchestrator) IdentifyDisputes(ctx context.Context, caseName string) (string, error) {
	if strings.TrimSpace(caseName) == "" {
		return "", errors.New("missing case name")
	}

	setPhase("disputes")
	defer clearPhase()

	if o.cfg.LogDir != "" {
		logPath := filepath.Join(o.cfg.LogDir,
			time.Now().Format("2006-01-02-15-04-05")+"-disputes.log")
		if err := openLogSink(logPath); err != nil {
			logf("warning: could not open pipeline log: %v", err)
		} else {
			defer closeLogSink()
		}
	}

	logf("开始识别案件 %q 的争议焦点", caseName)

	caseDir, prompt, err := o.buildPrompt(caseName)
	if err != nil {
		logf("aborted: %v", err)
		return "", err
	}

	report := o.generateReport(ctx, caseName, prompt)

	path, err := WriteReport(caseDir, report)
	if err != nil {
		logf("aborted: %v", err)
		return "", err
	}

	logf("争议焦点分析文件已创建: %s", path)
	return path, nil
}

// BuildPrompt assembles the analysis prompt for caseName without invoking
// generation. Useful for inspecting the prompt before spending a model call.
func (o *Orchestrator) BuildPrompt(caseName string) (string, error) {
	_, prompt, err := o.buildPrompt(caseName)
	return prompt, err
}

// buildPrompt performs the resolve, collect, and assemble steps shared by
// IdentifyDisputes and BuildPrompt.
func (o *Orchestrator) buildPrompt(caseName string) (caseDir, prompt string, err error) {
	caseDir, err = o.ResolveCase(caseName)
	if err != nil {
		return "", "", err
	}
	logf("案件路径: %s", caseDir)

	materialsDir := filepath.Join(caseDir, materialsDirName)
	if info, statErr := os.Stat(materialsDir); statErr != nil || !info.IsDir() {
		return "", "", fmt.Errorf("%w: %s", ErrNoMaterialsDir, materialsDir)
	}

	set, err := o.CollectMaterials(materialsDir)
	if err != nil {
		return "", "", err
	}

	methodology, err := o.loadMethodology()
	if err != nil {
		return "", "", err
	}

	return caseDir, BuildAnalysisPrompt(caseName, set.Records(), methodology), nil
}
