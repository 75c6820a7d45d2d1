// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package casework manages legal case folders on a local filesystem and
// generates dispute-focus analysis documents from case materials.
package casework

import "errors"

// Directory and file naming constants. Case folders keep the original
// Chinese layout so existing workspaces remain readable by this tool.
const (
	casePrefix       = "案件："
	casesDirName     = "案例"
	materialsDirName = "案件材料"
	focusDirName     = "争议焦点"
	reportPrefix     = "争议焦点分析-"
	genericLabel     = "通用材料"
	sampleCaseName   = "示例案件"

	// methodologyRelPath is the workspace-default methodology location,
	// relative to BaseDir.
	methodologyRelPath = "工程组件/争议焦点识别/index.md"
)

// Sentinel errors for pipeline aborts.
var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrNoMaterialsDir      = errors.New("materials directory not found")
	ErrNoMaterials         = errors.New("no materials found")
	ErrMethodologyNotFound = errors.New("methodology file not found")
)

// Orchestrator runs the case-folder operations against one Config.
type Orchestrator struct {
	cfg Config
	gen Generator
}

// New returns an Orchestrator for cfg. When gen is nil the fixed
// TemplateGenerator is used, which keeps the pipeline runnable offline.
func New(cfg Config, gen Generator) *Orchestrator {
	cfg.applyDefaults()
	if gen == nil {
		gen = &TemplateGenerator{}
	}
	return &Orchestrator{cfg: cfg, gen: gen}
}

// Config returns the resolved configuration.
func (o *Orchestrator) Config() Config { return o.cfg }
