// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// StatusHandler serves the public reads.
type StatusHandler struct {
	session *voting.Session
}

func NewStatusHandler(session *voting.Session) *StatusHandler {
	return &StatusHandler{session: session}
}

// GetWorkflow handles GET /workflow
func (h *StatusHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, workflowResponse(h.session.WorkflowStatus()))
}

// GetWinner handles GET /winner. Before the tally the winner is 0 and
// tallied is false.
func (h *StatusHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, tallied := h.session.Result()
	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		WinningProposalID: winner,
		Tallied:           tallied,
	})
}
