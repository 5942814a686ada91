// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"strings"
)

type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// proposalRegistry is append-only; a proposal's index is its ID.
type proposalRegistry struct {
	items []Proposal
}

func (r *proposalRegistry) append(description string) int {
	r.items = append(r.items, Proposal{Description: description})
	return len(r.items) - 1
}

func (r *proposalRegistry) valid(id int) bool {
	return id >= 0 && id < len(r.items)
}

func (r *proposalRegistry) len() int {
	return len(r.items)
}

// AddProposal appends a proposal and returns its ID.
func (s *Session) AddProposal(ctx context.Context, caller Identity, description string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addProposal(ctx, caller, description)
}

func (s *Session) addProposal(ctx context.Context, caller Identity, description string) (int, error) {
	if err := s.requireRegisteredVoter(caller); err != nil {
		return 0, err
	}
	if err := requirePhase(s.status, ProposalsRegistrationStarted, "proposals are not allowed yet"); err != nil {
		return 0, err
	}
	if strings.TrimSpace(description) == "" {
		return 0, ErrEmptyProposal
	}
	id := s.proposals.len()
	entry := JournalEntry{Command: CmdAddProposal, Caller: caller, Description: description, ProposalID: id}
	err := s.commit(ctx, entry, func() {
		s.proposals.append(description)
	}, ProposalRegistered{ProposalID: id})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Session) GetOneProposal(caller Identity, id int) (Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireRegisteredVoter(caller); err != nil {
		return Proposal{}, err
	}
	if !s.proposals.valid(id) {
		return Proposal{}, ErrNotFound
	}
	return s.proposals.items[id], nil
}

// Proposals returns a copy of every proposal in ID order.
func (s *Session) Proposals(caller Identity) ([]Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireRegisteredVoter(caller); err != nil {
		return nil, err
	}
	out := make([]Proposal, len(s.proposals.items))
	copy(out, s.proposals.items)
	return out, nil
}
