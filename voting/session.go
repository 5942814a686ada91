// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Identity is the opaque caller identity supplied by the environment.
type Identity string

// Role is the classification the identity gate assigns to a caller.
type Role int

const (
	RoleUnauthorized Role = iota
	RoleVoter
	RoleAdministrator
)

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleVoter:
		return "voter"
	default:
		return "unauthorized"
	}
}

// Session is a single voting process. All operations are serialized by one
// mutex, so every command either completes or leaves the session unchanged.
type Session struct {
	mu sync.Mutex

	admin     Identity
	status    Status
	voters    voterRegistry
	proposals proposalRegistry
	winner    int
	tallied   bool

	genesis   bool
	journal   Journal
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
	replaying bool
}

type Option func(*Session)

// WithGenesisProposal seeds a placeholder proposal at index 0 when proposal
// registration starts.
func WithGenesisProposal(enabled bool) Option {
	return func(s *Session) { s.genesis = enabled }
}

func WithJournal(j Journal) Option {
	return func(s *Session) { s.journal = j }
}

func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session in RegisteringVoters administered by admin.
func NewSession(admin Identity, opts ...Option) *Session {
	s := &Session{
		admin:  admin,
		status: RegisteringVoters,
		voters: newVoterRegistry(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Administrator returns the identity fixed at creation.
func (s *Session) Administrator() Identity {
	return s.admin
}

// Role classifies caller. The administrator is reported as such even when
// also registered as a voter.
func (s *Session) Role(caller Identity) Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.requireAdministrator(caller) == nil:
		return RoleAdministrator
	case s.requireRegisteredVoter(caller) == nil:
		return RoleVoter
	default:
		return RoleUnauthorized
	}
}

func (s *Session) requireAdministrator(caller Identity) error {
	if caller == "" || caller != s.admin {
		return ErrNotAdministrator
	}
	return nil
}

func (s *Session) requireRegisteredVoter(caller Identity) error {
	if v, ok := s.voters.get(caller); !ok || !v.IsRegistered {
		return ErrNotVoter
	}
	return nil
}

// WorkflowStatus returns the current phase.
func (s *Session) WorkflowStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// commit journals entry, then applies the mutation and emits notes. Callers
// must hold s.mu and have finished every precondition check.
func (s *Session) commit(ctx context.Context, entry JournalEntry, apply func(), notes ...Notification) error {
	if !s.replaying && s.journal != nil {
		entry.RecordedAt = s.now().UTC()
		if err := s.journal.Append(ctx, entry); err != nil {
			s.logger.Error("journal append failed", "command", entry.Command, "error", err)
			return fmt.Errorf("journal %s: %w", entry.Command, err)
		}
	}
	apply()
	if s.replaying || s.notifier == nil {
		return nil
	}
	for _, n := range notes {
		s.notifier.Notify(n)
	}
	return nil
}

func (s *Session) advance(ctx context.Context, caller Identity, cmd Command) error {
	if err := s.requireAdministrator(caller); err != nil {
		return err
	}
	change, err := Transition(s.status, cmd)
	if err != nil {
		return err
	}
	return s.commit(ctx, JournalEntry{Command: cmd, Caller: caller}, func() {
		if cmd == CmdStartProposalsRegistering && s.genesis {
			// genesis placeholder, no ProposalRegistered notification
			s.proposals.append("")
		}
		s.status = change.New
		s.logger.Info("workflow status changed", "previous", change.Previous.String(), "new", change.New.String())
	}, WorkflowStatusChange{PreviousStatus: change.Previous, NewStatus: change.New})
}

func (s *Session) StartProposalsRegistering(ctx context.Context, caller Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance(ctx, caller, CmdStartProposalsRegistering)
}

func (s *Session) EndProposalsRegistering(ctx context.Context, caller Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance(ctx, caller, CmdEndProposalsRegistering)
}

func (s *Session) StartVotingSession(ctx context.Context, caller Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance(ctx, caller, CmdStartVotingSession)
}

func (s *Session) EndVotingSession(ctx context.Context, caller Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance(ctx, caller, CmdEndVotingSession)
}
