// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"time"
)

// JournalEntry records one successful mutating command.
type JournalEntry struct {
	Seq         int64
	Command     Command
	Caller      Identity
	Voter       Identity
	Description string
	ProposalID  int
	RecordedAt  time.Time
}

// Journal persists commands before they are applied. If Append fails the
// command is rejected and the session is left unchanged.
type Journal interface {
	Append(ctx context.Context, entry JournalEntry) error
}

// Replay re-applies journaled commands to a fresh session. Entries are not
// journaled again and no notifications are emitted. Replay must run before the
// session serves requests. A proposal id or winner that differs from the
// recorded one fails the replay; this catches a session restored with a
// different genesis setting.
func (s *Session) Replay(ctx context.Context, entries []JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaying = true
	defer func() { s.replaying = false }()

	for _, e := range entries {
		var err error
		switch e.Command {
		case CmdRegisterVoter:
			err = s.registerVoter(ctx, e.Caller, e.Voter)
		case CmdAddProposal:
			var id int
			id, err = s.addProposal(ctx, e.Caller, e.Description)
			if err == nil && id != e.ProposalID {
				err = fmt.Errorf("proposal replayed as %d, journal recorded %d", id, e.ProposalID)
			}
		case CmdSetVote:
			err = s.setVote(ctx, e.Caller, e.ProposalID)
		case CmdTallyVotes:
			err = s.tallyVotes(ctx, e.Caller)
			if err == nil && s.winner != e.ProposalID {
				err = fmt.Errorf("tally replayed as %d, journal recorded %d", s.winner, e.ProposalID)
			}
		default:
			if !IsWorkflowCommand(e.Command) {
				err = fmt.Errorf("unknown command %q", e.Command)
				break
			}
			err = s.advance(ctx, e.Caller, e.Command)
		}
		if err != nil {
			return fmt.Errorf("replay entry %d (%s): %w", e.Seq, e.Command, err)
		}
	}

	s.logger.Info("journal replayed", "entries", len(entries), "status", s.status.String())
	return nil
}
