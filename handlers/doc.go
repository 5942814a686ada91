// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct over the shared *voting.Session:

  - AdminHandler: voter registration, workflow transitions, tally
  - VoterHandler: voter lookup, proposals, votes
  - StatusHandler: public workflow status and winner
  - NotificationHandler: audit log paging (administrator only)

	adminHandler := handlers.NewAdminHandler(session)
	notificationHandler := handlers.NewNotificationHandler(session, auditLog)

# Caller Identity

Handlers read the caller placed in the request context by
middleware.RequireIdentity. The session itself decides whether that caller is
the administrator or a registered voter.

# Workflow

	RegisteringVoters
	  → POST /workflow/proposals/start → ProposalsRegistrationStarted
	  → POST /workflow/proposals/end   → ProposalsRegistrationEnded
	  → POST /workflow/voting/start    → VotingSessionStarted
	  → POST /workflow/voting/end      → VotingSessionEnded
	  → POST /workflow/tally           → VotesTallied

Transition wraps each Session method so the five routes share one handler
shape.

# Errors

StatusFor maps session errors to HTTP:

	ErrUnauthorized (admin or voter gate)  403 unauthorized
	ErrInvalidPhase                        409 invalid_phase
	ErrAlreadyRegistered                   409 already_registered
	ErrAlreadyVoted                        409 already_voted
	ErrEmptyProposal                       400 empty_proposal
	ErrInvalidIdentity                     400 invalid_identity
	ErrNotFound                            404 not_found
	anything else                          500 internal

Internal errors are logged and never echoed to the client.
*/
package handlers
