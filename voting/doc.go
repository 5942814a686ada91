// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements a single administrator-governed voting session.

# Workflow

A session moves through six phases, one administrator call at a time:

	RegisteringVoters
	  → ProposalsRegistrationStarted   (StartProposalsRegistering)
	  → ProposalsRegistrationEnded     (EndProposalsRegistering)
	  → VotingSessionStarted           (StartVotingSession)
	  → VotingSessionEnded             (EndVotingSession)
	  → VotesTallied                   (TallyVotes)

Out-of-order calls fail with a *PhaseError (errors.Is(err, ErrInvalidPhase))
and change nothing. Transition computes the next phase without side effects.

# Identity Gate

Every operation first checks its caller. Administrator operations fail with
ErrNotAdministrator for anyone but the identity passed to NewSession; voter
operations fail with ErrNotVoter for identities that were never registered.
Both wrap ErrUnauthorized.

# Proposals and Votes

Proposal IDs are insertion indices and never change. With
WithGenesisProposal(true) an empty placeholder occupies index 0 once proposal
registration opens; otherwise the first real proposal is 0.

Each voter votes once. TallyVotes picks the proposal with the most votes; the
lowest index wins a tie.

# Durability and Notifications

A Journal, when configured, receives every command before it is applied. If
the append fails the command fails and the session is unchanged. Replay
rebuilds a session from journaled commands at startup.

A Notifier receives VoterRegistered, ProposalRegistered, Voted and
WorkflowStatusChange after the change is applied.
*/
package voting
