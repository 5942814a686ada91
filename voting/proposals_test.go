// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openProposals(t *testing.T, opts ...Option) (*Session, *recorder) {
	t.Helper()
	s, rec := newTestSession(t, opts...)
	require.NoError(t, s.RegisterVoter(context.Background(), admin, voter))
	advanceTo(t, s, ProposalsRegistrationStarted)
	rec.notes = nil
	return s, rec
}

func TestAddProposal(t *testing.T) {
	ctx := context.Background()
	s, rec := openProposals(t)

	first, err := s.AddProposal(ctx, voter, "Bobo")
	require.NoError(t, err)
	second, err := s.AddProposal(ctx, voter, "Bibi")
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, []Notification{ProposalRegistered{ProposalID: 0}, ProposalRegistered{ProposalID: 1}}, rec.notes)

	p, err := s.GetOneProposal(voter, 1)
	require.NoError(t, err)
	assert.Equal(t, Proposal{Description: "Bibi", VoteCount: 0}, p)
}

func TestAddProposalWithGenesisPlaceholder(t *testing.T) {
	ctx := context.Background()
	s, rec := openProposals(t, WithGenesisProposal(true))

	genesis, err := s.GetOneProposal(voter, 0)
	require.NoError(t, err)
	assert.Equal(t, Proposal{}, genesis)

	id, err := s.AddProposal(ctx, voter, "Bobo")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, []Notification{ProposalRegistered{ProposalID: 1}}, rec.notes)

	all, err := s.Proposals(voter)
	require.NoError(t, err)
	assert.Equal(t, []Proposal{{}, {Description: "Bobo"}}, all)
}

func TestAddProposalRejectsEmptyDescription(t *testing.T) {
	ctx := context.Background()
	s, rec := openProposals(t)

	for _, d := range []string{"", " ", "\t\n"} {
		_, err := s.AddProposal(ctx, voter, d)
		assert.ErrorIs(t, err, ErrEmptyProposal)
	}

	all, err := s.Proposals(voter)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, rec.notes)
}

func TestAddProposalOnlyWhileProposalsOpen(t *testing.T) {
	ctx := context.Background()
	for _, status := range allStatuses {
		if status == ProposalsRegistrationStarted {
			continue
		}
		t.Run(status.String(), func(t *testing.T) {
			s, _ := newTestSession(t)
			require.NoError(t, s.RegisterVoter(ctx, admin, voter))
			advanceTo(t, s, status)

			_, err := s.AddProposal(ctx, voter, "Proposal")

			assert.ErrorIs(t, err, ErrInvalidPhase)
			assert.Contains(t, err.Error(), "proposals are not allowed yet")
		})
	}
}

func TestGetOneProposalOutOfRange(t *testing.T) {
	ctx := context.Background()
	s, _ := openProposals(t)
	_, err := s.AddProposal(ctx, voter, "Bobo")
	require.NoError(t, err)

	for _, id := range []int{-1, 1, 42} {
		_, err := s.GetOneProposal(voter, id)
		assert.ErrorIs(t, err, ErrNotFound, "id %d", id)
	}
}

func TestProposalsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := openProposals(t)
	_, err := s.AddProposal(ctx, voter, "Bobo")
	require.NoError(t, err)

	all, err := s.Proposals(voter)
	require.NoError(t, err)
	all[0].VoteCount = 99

	p, err := s.GetOneProposal(voter, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.VoteCount)
}
