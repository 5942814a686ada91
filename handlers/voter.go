// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// VoterHandler serves the registered-voter operations.
type VoterHandler struct {
	session *voting.Session
}

func NewVoterHandler(session *voting.Session) *VoterHandler {
	return &VoterHandler{session: session}
}

// GetVoter handles GET /voters/{identity}
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")

	v, err := h.session.GetVoter(caller(r), voting.Identity(identity))
	if err != nil {
		sessionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterResponse{
		Identity:        identity,
		IsRegistered:    v.IsRegistered,
		HasVoted:        v.HasVoted,
		VotedProposalID: v.VotedProposalID,
	})
}

// AddProposal handles POST /proposals
func (h *VoterHandler) AddProposal(w http.ResponseWriter, r *http.Request) {
	var req models.AddProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	id, err := h.session.AddProposal(r.Context(), caller(r), req.Description)
	if err != nil {
		sessionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddProposalResponse{ProposalID: id})
}

// ListProposals handles GET /proposals
func (h *VoterHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.session.Proposals(caller(r))
	if err != nil {
		sessionError(w, r, err)
		return
	}

	resp := models.ProposalsResponse{Proposals: make([]models.ProposalResponse, 0, len(proposals))}
	for i, p := range proposals {
		resp.Proposals = append(resp.Proposals, proposalResponse(i, p))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetProposal handles GET /proposals/{id}
func (h *VoterHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		badRequest(w, "proposal id must be an integer")
		return
	}

	p, err := h.session.GetOneProposal(caller(r), id)
	if err != nil {
		sessionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposalResponse(id, p))
}

// SetVote handles POST /votes
func (h *VoterHandler) SetVote(w http.ResponseWriter, r *http.Request) {
	var req models.SetVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}
	if req.ProposalID == nil {
		badRequest(w, "proposal_id is required")
		return
	}

	voter := caller(r)
	if err := h.session.SetVote(r.Context(), voter, *req.ProposalID); err != nil {
		sessionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Voter:      string(voter),
		ProposalID: *req.ProposalID,
	})
}

func proposalResponse(id int, p voting.Proposal) models.ProposalResponse {
	return models.ProposalResponse{
		ID:          id,
		Description: p.Description,
		VoteCount:   p.VoteCount,
	}
}
