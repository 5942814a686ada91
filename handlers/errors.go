// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// StatusFor maps a session error to its HTTP status and error code.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, voting.ErrUnauthorized):
		return http.StatusForbidden, models.CodeUnauthorized
	case errors.Is(err, voting.ErrInvalidPhase):
		return http.StatusConflict, models.CodeInvalidPhase
	case errors.Is(err, voting.ErrAlreadyRegistered):
		return http.StatusConflict, models.CodeAlreadyRegistered
	case errors.Is(err, voting.ErrAlreadyVoted):
		return http.StatusConflict, models.CodeAlreadyVoted
	case errors.Is(err, voting.ErrEmptyProposal):
		return http.StatusBadRequest, models.CodeEmptyProposal
	case errors.Is(err, voting.ErrInvalidIdentity):
		return http.StatusBadRequest, models.CodeInvalidIdentity
	case errors.Is(err, voting.ErrNotFound):
		return http.StatusNotFound, models.CodeNotFound
	default:
		return http.StatusInternalServerError, models.CodeInternal
	}
}

func sessionError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("session command failed", "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, status, code, "Internal error")
		return
	}
	middleware.ErrorResponse(w, status, code, err.Error())
}

// caller returns the identity placed by middleware.RequireIdentity. An
// unauthenticated request yields the empty identity, which every gate rejects.
func caller(r *http.Request) voting.Identity {
	id, _ := middleware.IdentityFrom(r.Context())
	return id
}

func badRequest(w http.ResponseWriter, message string) {
	middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeBadRequest, message)
}
