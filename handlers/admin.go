// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// AdminHandler serves the administrator-only commands.
type AdminHandler struct {
	session *voting.Session
}

func NewAdminHandler(session *voting.Session) *AdminHandler {
	return &AdminHandler{session: session}
}

// RegisterVoter handles POST /voters
func (h *AdminHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	identity := voting.Identity(req.Identity)
	if err := h.session.RegisterVoter(r.Context(), caller(r), identity); err != nil {
		sessionError(w, r, err)
		return
	}

	slog.Info("voter registered")

	middleware.JSONResponse(w, http.StatusCreated, models.VoterResponse{
		Identity:     req.Identity,
		IsRegistered: true,
	})
}

// ListVoters handles GET /voters
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.session.Voters(caller(r))
	if err != nil {
		sessionError(w, r, err)
		return
	}

	resp := models.VotersResponse{Voters: make([]string, 0, len(voters))}
	for _, v := range voters {
		resp.Voters = append(resp.Voters, string(v))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Transition returns a handler running one workflow command, such as
// session.StartVotingSession, and replying with the new status.
func (h *AdminHandler) Transition(command func(context.Context, voting.Identity) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := command(r.Context(), caller(r)); err != nil {
			sessionError(w, r, err)
			return
		}
		middleware.JSONResponse(w, http.StatusOK, workflowResponse(h.session.WorkflowStatus()))
	}
}

// TallyVotes handles POST /workflow/tally
func (h *AdminHandler) TallyVotes(w http.ResponseWriter, r *http.Request) {
	if err := h.session.TallyVotes(r.Context(), caller(r)); err != nil {
		sessionError(w, r, err)
		return
	}

	winner, tallied := h.session.Result()
	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		WinningProposalID: winner,
		Tallied:           tallied,
	})
}

func workflowResponse(s voting.Status) models.WorkflowResponse {
	return models.WorkflowResponse{Status: s.String(), Code: int(s)}
}
