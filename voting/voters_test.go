// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterVoter(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestSession(t)

	require.NoError(t, s.RegisterVoter(ctx, admin, voter))

	got, err := s.GetVoter(voter, voter)
	require.NoError(t, err)
	assert.Equal(t, Voter{IsRegistered: true, HasVoted: false, VotedProposalID: 0}, got)
	assert.Equal(t, []Notification{VoterRegistered{Voter: voter}}, rec.notes)
}

func TestRegisterVoterOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestSession(t)
	require.NoError(t, s.RegisterVoter(ctx, admin, voter))

	err := s.RegisterVoter(ctx, admin, voter)

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Len(t, rec.notes, 1)
	voters, err := s.Voters(admin)
	require.NoError(t, err)
	assert.Equal(t, []Identity{voter}, voters)
}

func TestRegisterVoterOnlyWhileRegistrationOpen(t *testing.T) {
	ctx := context.Background()
	for _, status := range allStatuses[1:] {
		t.Run(status.String(), func(t *testing.T) {
			s, _ := newTestSession(t)
			advanceTo(t, s, status)

			err := s.RegisterVoter(ctx, admin, voter)

			assert.ErrorIs(t, err, ErrInvalidPhase)
			assert.Contains(t, err.Error(), "voters registration is not open yet")
			assert.Equal(t, RoleUnauthorized, s.Role(voter))
		})
	}
}

func TestRegisterVoterRejectsEmptyIdentity(t *testing.T) {
	s, rec := newTestSession(t)

	for _, id := range []Identity{"", "   "} {
		assert.ErrorIs(t, s.RegisterVoter(context.Background(), admin, id), ErrInvalidIdentity)
	}
	assert.Empty(t, rec.notes)
}

func TestGetVoterUnknownIdentityReturnsZeroRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	require.NoError(t, s.RegisterVoter(ctx, admin, voter))

	got, err := s.GetVoter(voter, nonVoter)

	require.NoError(t, err)
	assert.Equal(t, Voter{}, got)
}

func TestGetVoterReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	require.NoError(t, s.RegisterVoter(ctx, admin, voter))

	got, err := s.GetVoter(voter, voter)
	require.NoError(t, err)
	got.HasVoted = true

	again, err := s.GetVoter(voter, voter)
	require.NoError(t, err)
	assert.False(t, again.HasVoted)
}

func TestVotersKeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	ids := []Identity{"0xc", "0xa", "0xb"}
	for _, id := range ids {
		require.NoError(t, s.RegisterVoter(ctx, admin, id))
	}

	got, err := s.Voters(admin)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
