// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "context"

// plurality returns the index of the first proposal holding the highest vote
// count. An empty slice yields 0.
func plurality(proposals []Proposal) int {
	winner, best := 0, 0
	for i, p := range proposals {
		if p.VoteCount > best {
			winner, best = i, p.VoteCount
		}
	}
	return winner
}

// TallyVotes selects the winning proposal and closes the workflow.
func (s *Session) TallyVotes(ctx context.Context, caller Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tallyVotes(ctx, caller)
}

func (s *Session) tallyVotes(ctx context.Context, caller Identity) error {
	if err := s.requireAdministrator(caller); err != nil {
		return err
	}
	change, err := Transition(s.status, CmdTallyVotes)
	if err != nil {
		return err
	}
	winner := plurality(s.proposals.items)
	return s.commit(ctx, JournalEntry{Command: CmdTallyVotes, Caller: caller, ProposalID: winner}, func() {
		s.winner = winner
		s.tallied = true
		s.status = change.New
		s.logger.Info("votes tallied", "winning_proposal_id", winner, "proposals", s.proposals.len())
	}, WorkflowStatusChange{PreviousStatus: change.Previous, NewStatus: change.New})
}

// WinningProposalID returns the tally result, or 0 before the tally.
func (s *Session) WinningProposalID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner
}

// Result returns the winner and whether the tally has run, which tells a
// zero winner apart from a session that has not been tallied.
func (s *Session) Result() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner, s.tallied
}
