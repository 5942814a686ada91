// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// NotificationStore lists persisted notifications; *db.AuditLog implements it.
type NotificationStore interface {
	List(ctx context.Context, after int64, limit int) ([]db.NotificationRecord, error)
}

type NotificationHandler struct {
	session *voting.Session
	store   NotificationStore
}

func NewNotificationHandler(session *voting.Session, store NotificationStore) *NotificationHandler {
	return &NotificationHandler{session: session, store: store}
}

// List handles GET /notifications?after=&limit=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.session.Role(caller(r)) != voting.RoleAdministrator {
		sessionError(w, r, voting.ErrNotAdministrator)
		return
	}

	var after int64
	if s := r.URL.Query().Get("after"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			badRequest(w, "after must be a non-negative integer")
			return
		}
		after = v
	}

	limit := db.DefaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > db.MaxListLimit {
			badRequest(w, "limit must be between 1 and "+strconv.Itoa(db.MaxListLimit))
			return
		}
		limit = v
	}

	records, err := h.store.List(r.Context(), after, limit)
	if err != nil {
		slog.Error("failed to list notifications", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Failed to list notifications")
		return
	}

	resp := models.NotificationsResponse{
		Notifications: make([]models.Notification, 0, len(records)),
		Next:          after,
	}
	for _, rec := range records {
		resp.Notifications = append(resp.Notifications, models.Notification{
			Seq:       rec.Seq,
			ID:        rec.ID,
			Kind:      rec.Kind,
			Payload:   rec.Payload,
			CreatedAt: rec.CreatedAt,
		})
		resp.Next = rec.Seq
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
