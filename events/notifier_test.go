// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/voting"
)

func TestSessionPublishesThroughBus(t *testing.T) {
	bus, reg := newTestBus(t)
	ctx := context.Background()

	_, registered := bus.Subscribe(TypeOf(voting.KindVoterRegistered))
	_, changes := bus.Subscribe(TypeOf(voting.KindWorkflowStatusChange))

	session := voting.NewSession("admin", voting.WithNotifier(bus), voting.WithLogger(quietLogger()))
	require.NoError(t, session.RegisterVoter(ctx, "admin", "alice"))
	require.NoError(t, session.StartProposalsRegistering(ctx, "admin"))

	require.Len(t, registered, 1)
	evt := <-registered
	assert.Equal(t, voting.VoterRegistered{Voter: "alice"}, evt.Data)
	assert.Equal(t, EventType("VoterRegistered"), evt.Type)

	require.Len(t, changes, 1)
	assert.Equal(t, voting.WorkflowStatusChange{
		PreviousStatus: voting.RegisteringVoters,
		NewStatus:      voting.ProposalsRegistrationStarted,
	}, (<-changes).Data)

	assert.Equal(t, 1.0, counterValue(t, reg, "quickly_vote_events_published_total", map[string]string{"type": "VoterRegistered"}))
}

func TestFailedCommandPublishesNothing(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	_, ch := bus.Subscribe(TypeOf(voting.KindWorkflowStatusChange))
	session := voting.NewSession("admin", voting.WithNotifier(bus), voting.WithLogger(quietLogger()))

	err := session.EndVotingSession(ctx, "admin")
	require.ErrorIs(t, err, voting.ErrInvalidPhase)
	assert.Empty(t, ch)
}
