// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
	"github.com/danielhkuo/quickly-vote/voting"
)

// TestFullVotingWorkflow runs the whole session through the handlers with
// signed identities and a SQLite journal:
// 1. Register voters
// 2. Open proposals, submit proposals, close proposals
// 3. Open voting, vote, close voting
// 4. Tally and read the winner
// 5. Restore a second session from the journal
func TestFullVotingWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	journal := db.NewJournal(conn)
	session := testutil.NewTestSession(voting.WithJournal(journal))

	admin := NewAdminHandler(session)
	voter := NewVoterHandler(session)
	status := NewStatusHandler(session)

	signed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireIdentity(testutil.TestSalt, h)
	}
	do := func(h http.HandlerFunc, method, path, caller string, body interface{}) *httptest.ResponseRecorder {
		var headers map[string]string
		if caller != "" {
			headers = testutil.SignedHeaders(caller)
		}
		w := httptest.NewRecorder()
		h(w, testutil.MakeRequest(method, path, body, headers))
		return w
	}

	// Step 1: register voters
	for _, id := range []string{"alice", "bob", "carol"} {
		w := do(signed(admin.RegisterVoter), "POST", "/voters", testutil.TestAdmin, models.RegisterVoterRequest{Identity: id})
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - register %s failed: %d - %s", id, w.Code, w.Body.String())
		}
	}

	// unsigned request never reaches the session
	w := do(signed(admin.RegisterVoter), "POST", "/voters", "", models.RegisterVoterRequest{Identity: "dave"})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Step 2: proposals
	testutil.AssertStatus(t, do(signed(admin.Transition(session.StartProposalsRegistering)), "POST", "/workflow/proposals/start", testutil.TestAdmin, nil), http.StatusOK)

	for i, p := range []struct{ caller, description string }{
		{"alice", "Bobo"},
		{"bob", "Fifi"},
		{"carol", "Rex"},
	} {
		w := do(signed(voter.AddProposal), "POST", "/proposals", p.caller, models.AddProposalRequest{Description: p.description})
		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.AddProposalResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ProposalID != i {
			t.Errorf("Step 2 - expected proposal id %d, got %d", i, resp.ProposalID)
		}
	}
	testutil.AssertStatus(t, do(signed(admin.Transition(session.EndProposalsRegistering)), "POST", "/workflow/proposals/end", testutil.TestAdmin, nil), http.StatusOK)

	// Step 3: voting
	testutil.AssertStatus(t, do(signed(admin.Transition(session.StartVotingSession)), "POST", "/workflow/voting/start", testutil.TestAdmin, nil), http.StatusOK)
	votes := map[string]int{"alice": 1, "bob": 1, "carol": 2}
	for caller, id := range votes {
		w := do(signed(voter.SetVote), "POST", "/votes", caller, models.SetVoteRequest{ProposalID: &id})
		testutil.AssertStatus(t, w, http.StatusOK)
	}
	testutil.AssertStatus(t, do(signed(admin.Transition(session.EndVotingSession)), "POST", "/workflow/voting/end", testutil.TestAdmin, nil), http.StatusOK)

	// Step 4: tally
	testutil.AssertStatus(t, do(signed(admin.TallyVotes), "POST", "/workflow/tally", testutil.TestAdmin, nil), http.StatusOK)

	w = do(status.GetWinner, "GET", "/winner", "", nil)
	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if !winner.Tallied || winner.WinningProposalID != 1 {
		t.Fatalf("Step 4 - expected proposal 1 to win, got %+v", winner)
	}

	// Step 5: restore from journal
	entries, err := journal.Load(t.Context())
	if err != nil {
		t.Fatalf("Step 5 - load journal: %v", err)
	}
	restored := testutil.NewTestSession()
	if err := restored.Replay(t.Context(), entries); err != nil {
		t.Fatalf("Step 5 - replay: %v", err)
	}
	if id, tallied := restored.Result(); !tallied || id != 1 {
		t.Errorf("Step 5 - restored result %d/%v", id, tallied)
	}
	if restored.WorkflowStatus() != voting.VotesTallied {
		t.Errorf("Step 5 - restored status %s", restored.WorkflowStatus())
	}
}
