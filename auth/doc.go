// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth signs and verifies caller identities.

# Identity Signatures

Every gated request carries an identity and its HMAC-SHA256 signature:

	sig := auth.SignIdentity("alice", salt)
	err := auth.VerifyIdentity("alice", sig, salt)

The signature is URL-safe base64 encoded without padding. Since it's
deterministic, the same identity and salt always produce the same signature.
This allows verification without storing anything. Operators hand signatures
out with `quickly-vote -sign <identity>`.

VerifyIdentity returns ErrMissingIdentity for a blank identity and
ErrInvalidSignature for any mismatch.

# Fingerprints

Logs never carry raw identities:

	slog.Info("request", "caller", auth.Fingerprint(identity, salt))

A fingerprint is a short base62 tag derived with a separate HMAC input, so it
cannot be replayed as a signature.

# ID Generation

Random hex IDs, used for request IDs:

	id, err := auth.GenerateID(8)  // 16 hex characters
*/
package auth
