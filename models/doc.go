// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - RegisterVoterRequest: identity
  - AddProposalRequest: description
  - SetVoteRequest: proposal_id

# Response Types

  - VoterResponse: identity, is_registered, has_voted, voted_proposal_id
  - VotersResponse: voters
  - AddProposalResponse: proposal_id
  - ProposalResponse / ProposalsResponse: id, description, vote_count
  - VoteResponse: voter, proposal_id
  - WorkflowResponse: status, code
  - WinnerResponse: winning_proposal_id, tallied
  - NotificationsResponse: notifications, next
  - ErrorResponse: error, code, message

# Error Codes

ErrorResponse.Code lets clients branch without parsing messages:

	CodeUnauthenticated   401  missing or bad identity signature
	CodeUnauthorized      403  caller is not the administrator / not a voter
	CodeInvalidPhase      409  operation not allowed in the current phase
	CodeAlreadyRegistered 409
	CodeAlreadyVoted      409
	CodeEmptyProposal     400
	CodeInvalidIdentity   400
	CodeNotFound          404  proposal index out of range
	CodeBadRequest        400  malformed body or query
	CodeInternal          500
*/
package models
