// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "context"

// SetVote records the caller's single vote for proposal id.
func (s *Session) SetVote(ctx context.Context, caller Identity, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setVote(ctx, caller, id)
}

func (s *Session) setVote(ctx context.Context, caller Identity, id int) error {
	if err := s.requireRegisteredVoter(caller); err != nil {
		return err
	}
	if err := requirePhase(s.status, VotingSessionStarted, "voting session havent started yet"); err != nil {
		return err
	}
	voter, _ := s.voters.get(caller)
	if voter.HasVoted {
		return ErrAlreadyVoted
	}
	if !s.proposals.valid(id) {
		return ErrNotFound
	}
	entry := JournalEntry{Command: CmdSetVote, Caller: caller, ProposalID: id}
	return s.commit(ctx, entry, func() {
		voter.HasVoted = true
		voter.VotedProposalID = id
		s.proposals.items[id].VoteCount++
	}, Voted{Voter: caller, ProposalID: id})
}
