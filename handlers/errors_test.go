// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not administrator", voting.ErrNotAdministrator, http.StatusForbidden, models.CodeUnauthorized},
		{"not voter", voting.ErrNotVoter, http.StatusForbidden, models.CodeUnauthorized},
		{"phase", &voting.PhaseError{Expected: voting.VotingSessionStarted, Actual: voting.RegisteringVoters, Message: "voting session havent started yet"}, http.StatusConflict, models.CodeInvalidPhase},
		{"already registered", voting.ErrAlreadyRegistered, http.StatusConflict, models.CodeAlreadyRegistered},
		{"already voted", voting.ErrAlreadyVoted, http.StatusConflict, models.CodeAlreadyVoted},
		{"empty proposal", voting.ErrEmptyProposal, http.StatusBadRequest, models.CodeEmptyProposal},
		{"invalid identity", voting.ErrInvalidIdentity, http.StatusBadRequest, models.CodeInvalidIdentity},
		{"not found", voting.ErrNotFound, http.StatusNotFound, models.CodeNotFound},
		{"wrapped journal failure", fmt.Errorf("journal set_vote: %w", errors.New("disk full")), http.StatusInternalServerError, models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := StatusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
