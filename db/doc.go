// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the two
persistent stores of the service.

# Connections

Open selects the driver from the configured database type:

	conn, err := db.Open(ctx, db.TypeSQLite, "file:vote.db")
	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (no cgo); PostgreSQL uses lib/pq. Queries use
$N placeholders, which both drivers accept.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - journal: every successful session command, in order
  - notification: audit log of emitted notifications

# Journal

Journal implements voting.Journal. On startup the entries are loaded and
replayed into a fresh session:

	j := db.NewJournal(conn)
	entries, err := j.Load(ctx)
	session := voting.NewSession(admin, voting.WithJournal(j))
	err = session.Replay(ctx, entries)

# Audit Log

AuditLog is an events.Subscriber that writes each notification as JSON:

	audit := db.NewAuditLog(conn, slog.Default())
	audit.Subscribe(bus)
	records, err := audit.List(ctx, afterSeq, 50)
*/
package db
