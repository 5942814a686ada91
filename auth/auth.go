// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingIdentity  = errors.New("missing identity")
	ErrInvalidSignature = errors.New("invalid identity signature")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func mac(identity, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	return h.Sum(nil)
}

// SignIdentity creates the signature a caller presents with its identity.
// Deterministic, so the server never stores it.
func SignIdentity(identity, salt string) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(mac(identity, salt)), "=")
}

// VerifyIdentity checks signature against identity. Comparison is constant time.
func VerifyIdentity(identity, signature, salt string) error {
	if strings.TrimSpace(identity) == "" {
		return ErrMissingIdentity
	}
	expected := SignIdentity(identity, salt)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

// Fingerprint is a short base62 tag for identity, used in logs in place of
// the raw identity.
func Fingerprint(identity, salt string) string {
	if identity == "" {
		return ""
	}
	return base62Encode(mac("fingerprint:"+identity, salt)[:8])
}

// base62Encode converts up to 8 bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11)
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
