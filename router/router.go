// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

// NewRouter registers every route on a new ServeMux. HTTP metrics are
// registered on reg, which is also served at /metrics.
func NewRouter(session *voting.Session, notifications handlers.NotificationStore, cfg cliparse.Config, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	metrics := middleware.NewHTTPMetrics(reg)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(session)
	voterHandler := handlers.NewVoterHandler(session)
	statusHandler := handlers.NewStatusHandler(session)
	notificationHandler := handlers.NewNotificationHandler(session, notifications)

	public := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, metrics.Instrument(pattern, middleware.WithLogging(h)))
	}
	gated := func(pattern string, h http.HandlerFunc) {
		public(pattern, middleware.RequireIdentity(cfg.IdentitySalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Voter registry
	gated("POST /voters", adminHandler.RegisterVoter)
	gated("GET /voters", adminHandler.ListVoters)
	gated("GET /voters/{identity}", voterHandler.GetVoter)

	// Proposals and ballots
	gated("POST /proposals", voterHandler.AddProposal)
	gated("GET /proposals", voterHandler.ListProposals)
	gated("GET /proposals/{id}", voterHandler.GetProposal)
	gated("POST /votes", voterHandler.SetVote)

	// Workflow (administrator)
	gated("POST /workflow/proposals/start", adminHandler.Transition(session.StartProposalsRegistering))
	gated("POST /workflow/proposals/end", adminHandler.Transition(session.EndProposalsRegistering))
	gated("POST /workflow/voting/start", adminHandler.Transition(session.StartVotingSession))
	gated("POST /workflow/voting/end", adminHandler.Transition(session.EndVotingSession))
	gated("POST /workflow/tally", adminHandler.TallyVotes)

	// Public reads
	public("GET /workflow", statusHandler.GetWorkflow)
	public("GET /winner", statusHandler.GetWinner)

	// Audit log
	gated("GET /notifications", notificationHandler.List)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
