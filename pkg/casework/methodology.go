// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed prompts/methodology.md
var defaultMethodology string

// loadMethodology returns the three-tier methodology text injected verbatim
// into generation prompts. An explicitly configured file must exist; the
// workspace-default location falls back to the embedded methodology when
// absent.
func (o *Orchestrator) loadMethodology() (string, error) {
	if o.cfg.MethodologyFile != "" {
		data, err := os.ReadFile(o.cfg.MethodologyFile)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrMethodologyNotFound, o.cfg.MethodologyFile)
		}
		return string(data), nil
	}

	path := filepath.Join(o.cfg.BaseDir, filepath.FromSlash(methodologyRelPath))
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	}
	return defaultMethodology, nil
}
