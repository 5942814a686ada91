// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"strings"
)

// Status is the workflow phase of the voting session.
type Status int

const (
	RegisteringVoters Status = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var statusNames = [...]string{
	RegisteringVoters:            "RegisteringVoters",
	ProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	ProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	VotingSessionStarted:         "VotingSessionStarted",
	VotingSessionEnded:           "VotingSessionEnded",
	VotesTallied:                 "VotesTallied",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name so JSON payloads stay readable.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("unknown workflow status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus looks a status up by name, ignoring case.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown workflow status %q", name)
}

// Command names every mutating operation. The names are persisted in the
// journal, so they must not change.
type Command string

const (
	CmdRegisterVoter             Command = "register_voter"
	CmdAddProposal               Command = "add_proposal"
	CmdSetVote                   Command = "set_vote"
	CmdStartProposalsRegistering Command = "start_proposals_registering"
	CmdEndProposalsRegistering   Command = "end_proposals_registering"
	CmdStartVotingSession        Command = "start_voting_session"
	CmdEndVotingSession          Command = "end_voting_session"
	CmdTallyVotes                Command = "tally_votes"
)

type transition struct {
	from    Status
	to      Status
	message string
}

var transitions = map[Command]transition{
	CmdStartProposalsRegistering: {RegisteringVoters, ProposalsRegistrationStarted, "registering proposals cant be started now"},
	CmdEndProposalsRegistering:   {ProposalsRegistrationStarted, ProposalsRegistrationEnded, "registering proposals havent started yet"},
	CmdStartVotingSession:        {ProposalsRegistrationEnded, VotingSessionStarted, "registering proposals phase is not finished"},
	CmdEndVotingSession:          {VotingSessionStarted, VotingSessionEnded, "voting session havent started yet"},
	CmdTallyVotes:                {VotingSessionEnded, VotesTallied, "current status is not voting session ended"},
}

// StatusChange is the result of a successful workflow transition.
type StatusChange struct {
	Previous Status
	New      Status
}

// Transition computes the next status for a workflow command. It has no side
// effects; the session applies the returned change.
func Transition(current Status, cmd Command) (StatusChange, error) {
	t, ok := transitions[cmd]
	if !ok {
		return StatusChange{}, fmt.Errorf("%q is not a workflow command", cmd)
	}
	if current != t.from {
		return StatusChange{}, &PhaseError{Expected: t.from, Actual: current, Message: t.message}
	}
	return StatusChange{Previous: current, New: t.to}, nil
}

// IsWorkflowCommand reports whether cmd advances the workflow status.
func IsWorkflowCommand(cmd Command) bool {
	_, ok := transitions[cmd]
	return ok
}
