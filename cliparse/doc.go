// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: journal and audit log database (required)
  - DatabaseType: sqlite (default) or postgres
  - AdminIdentity: the session administrator (required)
  - IdentitySalt: Secret for identity signatures (required)
  - GenesisProposal: seed a placeholder proposal at index 0 (default: off)
  - Sign: identity to sign in helper mode

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-admin          Administrator identity
	-identity-salt  Identity signature salt
	-genesis        Enable the placeholder proposal
	-env            Dotenv file to load (default .env, ignored when missing)
	-sign           Print the signature for an identity and exit

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	ADMIN_IDENTITY   → -admin
	IDENTITY_SALT    → -identity-salt
	GENESIS_PROPOSAL → -genesis

CLI flags take precedence over environment variables, which take precedence
over the dotenv file.

# Validation

ParseFlags returns an error if required values are missing:

  - IDENTITY_SALT must be provided
  - DATABASE_URL must be provided
  - ADMIN_IDENTITY must be provided

With -sign only IDENTITY_SALT is required.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
*/
package cliparse
