// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"4 bytes", 4, 8},
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSignIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		salt     string
	}{
		{"address", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", "identity-salt"},
		{"plain name", "alice", "identity-salt"},
		{"empty salt", "bob", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := SignIdentity(tt.identity, tt.salt)
			if sig == "" {
				t.Fatal("SignIdentity() returned empty string")
			}
			if sig != SignIdentity(tt.identity, tt.salt) {
				t.Error("SignIdentity() is not deterministic")
			}
			if sig == SignIdentity(tt.identity+"x", tt.salt) {
				t.Error("SignIdentity() produced same signature for different identities")
			}
			if strings.Contains(sig, "=") {
				t.Error("SignIdentity() contains padding characters")
			}
		})
	}
}

func TestVerifyIdentity(t *testing.T) {
	identity := "alice"
	salt := "test-salt"
	valid := SignIdentity(identity, salt)

	tests := []struct {
		name      string
		identity  string
		signature string
		salt      string
		wantErr   error
	}{
		{"valid signature", identity, valid, salt, nil},
		{"wrong signature", identity, "forged", salt, ErrInvalidSignature},
		{"other identity", "mallory", valid, salt, ErrInvalidSignature},
		{"wrong salt", identity, valid, "different-salt", ErrInvalidSignature},
		{"empty signature", identity, "", salt, ErrInvalidSignature},
		{"empty identity", "", SignIdentity("", salt), salt, ErrMissingIdentity},
		{"blank identity", "  ", SignIdentity("  ", salt), salt, ErrMissingIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyIdentity(tt.identity, tt.signature, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyIdentity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("alice", "salt")
	if fp == "" {
		t.Fatal("Fingerprint() returned empty string")
	}
	if fp != Fingerprint("alice", "salt") {
		t.Error("Fingerprint() is not deterministic")
	}
	if len(fp) > 11 {
		t.Errorf("Fingerprint() too long: %d chars", len(fp))
	}
	if fp == Fingerprint("bob", "salt") {
		t.Error("Fingerprint() produced same value for different identities")
	}
	if fp == Fingerprint("alice", "other-salt") {
		t.Error("Fingerprint() produced same value for different salts")
	}
	if Fingerprint("", "salt") != "" {
		t.Error("Fingerprint() of empty identity should be empty")
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"zero bytes", []byte{0, 0, 0, 0}, "0"},
		{"one", []byte{0, 0, 0, 1}, "1"},
		{"sixty two", []byte{62}, "10"},
		{"max", []byte{255, 255, 255, 255, 255, 255, 255, 255}, "lYGhA16ahyf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.input); got != tt.want {
				t.Errorf("base62Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func BenchmarkSignIdentity(b *testing.B) {
	identity := "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SignIdentity(identity, salt)
	}
}
