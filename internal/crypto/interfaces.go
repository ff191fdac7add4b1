// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// verifies candidates against them. Plaintext is never stored.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same
	// password return different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is
	// treated as a mismatch.
	Verify(password, hash string) bool
}

// TokenGenerator produces high-entropy single-use tokens (password reset)
// and the keyed digest that is persisted in their place.
type TokenGenerator interface {
	// Generate returns a new random token in its transmissible form.
	Generate() (string, error)

	// Digest returns the value stored for token. Equal tokens yield equal
	// digests, so a presented token can be looked up by its digest.
	Digest(token string) string
}
