// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs one administrator-governed voting session: the administrator
registers voters, opens and closes a proposal window, opens and closes a
ballot window, then tallies. The proposal with the most votes wins; ties go to
the lowest proposal id.

# Starting the Server

	DATABASE_URL=file:vote.db ADMIN_IDENTITY=owner IDENTITY_SALT=... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres -admin owner -identity-salt ...

Settings may also come from a .env file in the working directory.

# Identities

Callers send X-Identity and X-Identity-Signature. Operators generate the
signature for each participant:

	go run . -identity-salt ... -sign alice

# Durability

Every accepted command is written to the journal table before it takes
effect. On startup the journal is replayed into a fresh session, so a restart
resumes in the same phase with the same voters, proposals and votes.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_IDENTITY (-admin): the administrator
  - IDENTITY_SALT (-identity-salt): Secret for identity signatures

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - GENESIS_PROPOSAL (-genesis): seed an empty proposal at index 0

# Architecture

  - voting: the session state machine, registries and tally
  - events: notification bus with Prometheus metrics
  - db: schema, command journal, notification audit log
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: identity verification, CORS, logging, metrics, JSON helpers
  - models: Request/response types
  - auth: Identity signatures
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
