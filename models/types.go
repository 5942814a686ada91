package models

import (
	"encoding/json"
	"time"
)

// Error codes carried in ErrorResponse.Code
const (
	CodeUnauthenticated   = "unauthenticated"
	CodeUnauthorized      = "unauthorized"
	CodeInvalidPhase      = "invalid_phase"
	CodeAlreadyRegistered = "already_registered"
	CodeAlreadyVoted      = "already_voted"
	CodeEmptyProposal     = "empty_proposal"
	CodeInvalidIdentity   = "invalid_identity"
	CodeNotFound          = "not_found"
	CodeBadRequest        = "bad_request"
	CodeInternal          = "internal"
)

// Request types

type RegisterVoterRequest struct {
	Identity string `json:"identity"`
}

type AddProposalRequest struct {
	Description string `json:"description"`
}

// nil ProposalID means the field was missing
type SetVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type VoterResponse struct {
	Identity        string `json:"identity"`
	IsRegistered    bool   `json:"is_registered"`
	HasVoted        bool   `json:"has_voted"`
	VotedProposalID int    `json:"voted_proposal_id"`
}

type VotersResponse struct {
	Voters []string `json:"voters"`
}

type AddProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type ProposalResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

type ProposalsResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

type VoteResponse struct {
	Voter      string `json:"voter"`
	ProposalID int    `json:"proposal_id"`
}

// WorkflowResponse reports the phase by name and by ordinal.
type WorkflowResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

type WinnerResponse struct {
	WinningProposalID int  `json:"winning_proposal_id"`
	Tallied           bool `json:"tallied"`
}

type Notification struct {
	Seq       int64           `json:"seq"`
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Next is the seq to pass as ?after= for the following page.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Next          int64          `json:"next"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
