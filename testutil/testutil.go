// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

const (
	TestAdmin = "admin"
	TestSalt  = "test-identity-salt"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  db.TypeSQLite,
		AdminIdentity: TestAdmin,
		IdentitySalt:  TestSalt,
	}
}

// QuietLogger discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestSession creates a session administered by TestAdmin
func NewTestSession(opts ...voting.Option) *voting.Session {
	opts = append([]voting.Option{voting.WithLogger(QuietLogger())}, opts...)
	return voting.NewSession(TestAdmin, opts...)
}

// RegisterVoters registers each identity as TestAdmin
func RegisterVoters(t *testing.T, s *voting.Session, identities ...voting.Identity) {
	t.Helper()
	for _, id := range identities {
		if err := s.RegisterVoter(context.Background(), TestAdmin, id); err != nil {
			t.Fatalf("Failed to register voter %q: %v", id, err)
		}
	}
}

// AdvanceTo drives the workflow forward as TestAdmin until s reaches target
func AdvanceTo(t *testing.T, s *voting.Session, target voting.Status) {
	t.Helper()
	ctx := context.Background()
	steps := []func(context.Context, voting.Identity) error{
		s.StartProposalsRegistering,
		s.EndProposalsRegistering,
		s.StartVotingSession,
		s.EndVotingSession,
		s.TallyVotes,
	}
	for s.WorkflowStatus() < target {
		step := steps[s.WorkflowStatus()]
		if err := step(ctx, TestAdmin); err != nil {
			t.Fatalf("Failed to advance from %s: %v", s.WorkflowStatus(), err)
		}
	}
}

// SignedHeaders returns identity headers signed with TestSalt
func SignedHeaders(identity string) map[string]string {
	return map[string]string{
		middleware.HeaderIdentity:  identity,
		middleware.HeaderSignature: auth.SignIdentity(identity, TestSalt),
	}
}

// AsCaller attaches an already verified identity to req, bypassing the
// signature middleware
func AsCaller(req *http.Request, identity string) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), voting.Identity(identity)))
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
