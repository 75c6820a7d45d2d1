// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var (
	currentPhase string
	logSink      io.WriteCloser
)

// setPhase tags subsequent logf lines with a pipeline phase name.
func setPhase(p string) { currentPhase = p }

func clearPhase() { currentPhase = "" }

// logf writes a progress line to stderr and, when a sink is open, to the
// per-run log file. These are the human-readable status lines; errors are
// returned to the caller, never printed as stack traces.
func logf(format string, args ...any) {
	prefix := "caseworks"
	if currentPhase != "" {
		prefix += " " + currentPhase
	}
	line := fmt.Sprintf("%s %s: %s\n",
		time.Now().Format("15:04:05"), prefix, fmt.Sprintf(format, args...))
	fmt.Fprint(os.Stderr, line)
	if logSink != nil {
		io.WriteString(logSink, line) // nolint: best-effort mirror
	}
}

// openLogSink starts mirroring logf output to path, creating parent
// directories as needed.
func openLogSink(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logSink = f
	return nil
}

func closeLogSink() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}
