// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Serve hosts the workspace over HTTP so the bundled HTML pages stay
// reachable. Blocks until the listener fails; there is no shutdown hook,
// the tool is stopped with Ctrl+C like the rest of the REPL.
func (o *Orchestrator) Serve(addr string) error {
	if addr == "" {
		addr = o.cfg.ServerAddr
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Handle("/*", http.FileServer(http.Dir(o.cfg.BaseDir)))

	logf("serving %s on %s", o.cfg.BaseDir, addr)
	return http.ListenAndServe(addr, r)
}
