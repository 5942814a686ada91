// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	reg := prometheus.NewRegistry()
	mux := router.NewRouter(session, auditLog, cfg, reg)

# Endpoints

Service:

	GET /health  - Liveness
	GET /metrics - Prometheus exposition of reg
	GET /        - Banner

Administrator (signed identity, must be the administrator):

	POST /voters                   - Register voter
	GET  /voters                   - List voters
	POST /workflow/proposals/start - Open proposal registration
	POST /workflow/proposals/end   - Close proposal registration
	POST /workflow/voting/start    - Open voting
	POST /workflow/voting/end      - Close voting
	POST /workflow/tally           - Tally votes
	GET  /notifications            - Audit log (?after=&limit=)

Voter (signed identity, must be registered):

	GET  /voters/{identity} - Voter record
	POST /proposals         - Add proposal
	GET  /proposals         - List proposals
	GET  /proposals/{id}    - One proposal
	POST /votes             - Cast vote

Public:

	GET /workflow - Current status
	GET /winner   - Winning proposal id and tally flag

# Middleware Chain

Every API route is wrapped as

	metrics.Instrument(pattern, WithLogging(RequireIdentity(salt, handler)))

with RequireIdentity omitted on public routes. CORS wraps the whole mux in
main.
*/
package router
