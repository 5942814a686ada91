// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"strings"
)

type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID int  `json:"voted_proposal_id"`
}

// voterRegistry keeps voters keyed by identity plus their registration order.
type voterRegistry struct {
	byID  map[Identity]*Voter
	order []Identity
}

func newVoterRegistry() voterRegistry {
	return voterRegistry{byID: make(map[Identity]*Voter)}
}

func (r *voterRegistry) get(id Identity) (*Voter, bool) {
	v, ok := r.byID[id]
	return v, ok
}

func (r *voterRegistry) insert(id Identity) {
	r.byID[id] = &Voter{IsRegistered: true}
	r.order = append(r.order, id)
}

// RegisterVoter adds identity to the voter registry.
func (s *Session) RegisterVoter(ctx context.Context, caller, identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerVoter(ctx, caller, identity)
}

func (s *Session) registerVoter(ctx context.Context, caller, identity Identity) error {
	if err := s.requireAdministrator(caller); err != nil {
		return err
	}
	if err := requirePhase(s.status, RegisteringVoters, "voters registration is not open yet"); err != nil {
		return err
	}
	if strings.TrimSpace(string(identity)) == "" {
		return ErrInvalidIdentity
	}
	if _, ok := s.voters.get(identity); ok {
		return ErrAlreadyRegistered
	}
	entry := JournalEntry{Command: CmdRegisterVoter, Caller: caller, Voter: identity}
	return s.commit(ctx, entry, func() {
		s.voters.insert(identity)
	}, VoterRegistered{Voter: identity})
}

// GetVoter returns the voter record for identity. Unknown identities yield a
// zero record; only the caller is checked.
func (s *Session) GetVoter(caller, identity Identity) (Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireRegisteredVoter(caller); err != nil {
		return Voter{}, err
	}
	if v, ok := s.voters.get(identity); ok {
		return *v, nil
	}
	return Voter{}, nil
}

// Voters lists registered identities in registration order.
func (s *Session) Voters(caller Identity) ([]Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdministrator(caller); err != nil {
		return nil, err
	}
	out := make([]Identity, len(s.voters.order))
	copy(out, s.voters.order)
	return out, nil
}
