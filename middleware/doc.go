// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID or is generated,
and is echoed back in the response.

# Caller Identity

Gated routes require a signed identity:

	mux.HandleFunc("POST /votes", middleware.RequireIdentity(salt, h.SetVote))

RequireIdentity checks X-Identity against X-Identity-Signature and answers
401 with code "unauthenticated" on failure. Handlers read the caller with:

	caller, _ := middleware.IdentityFrom(r.Context())

Rejected identities are logged by fingerprint only.

# Metrics

	m := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)
	mux.HandleFunc(pattern, m.Instrument(pattern, handler))

Exports quickly_vote_http_requests_total{route,code} and
quickly_vote_http_request_duration_seconds{route}.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, X-Identity,
X-Identity-Signature, X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusConflict, models.CodeAlreadyVoted, "you have already voted")

ParseJSONBody rejects unknown fields:

	var req models.AddProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Logged as "remote".
*/
package middleware
