// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil holds fixtures shared by the handler and router tests: an
// in-memory SQLite database, a session administered by TestAdmin, workflow
// helpers and signed request headers.
package testutil
