// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quickly-vote/voting"
)

var _ voting.Journal = (*Journal)(nil)

// Journal stores session commands in the journal table.
type Journal struct {
	db *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

func (j *Journal) Append(ctx context.Context, e voting.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO journal (command, caller, voter, description, proposal_id, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, string(e.Command), string(e.Caller), string(e.Voter), e.Description, e.ProposalID, e.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Load returns every entry in append order.
func (j *Journal) Load(ctx context.Context) ([]voting.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, command, caller, voter, description, proposal_id, recorded_at
		FROM journal
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []voting.JournalEntry
	for rows.Next() {
		var (
			e                     voting.JournalEntry
			command, caller, voter string
		)
		if err := rows.Scan(&e.Seq, &command, &caller, &voter, &e.Description, &e.ProposalID, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Command = voting.Command(command)
		e.Caller = voting.Identity(caller)
		e.Voter = voting.Identity(voter)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
