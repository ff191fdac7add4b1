// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── PasswordHasher ───────────────────────────────────────────────────────────

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// multi-byte runes count by bytes: 25 × "é" is 50 bytes, 37 × "é" is 74
	_, err = h.Hash(strings.Repeat("é", 25))
	assert.NoError(t, err)
	_, err = h.Hash(strings.Repeat("é", 37))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	hash, err := h.Hash(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, h.Verify(strings.Repeat("a", MaxPasswordBytes), hash))
}

func TestPasswordHasher_Salted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("", ""))
}

func TestPasswordHasher_CostFallback(t *testing.T) {
	h, ok := NewPasswordHasher(0).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h, ok = NewPasswordHasher(bcrypt.MaxCost + 1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

// ── TokenGenerator ───────────────────────────────────────────────────────────

func TestResetTokenGenerator_Generate(t *testing.T) {
	g := NewResetTokenGenerator("key")

	first, err := g.Generate()
	require.NoError(t, err)
	second, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, first, resetTokenBytes*2)
	assert.NotEqual(t, first, second)
}

func TestResetTokenGenerator_Digest(t *testing.T) {
	g := NewResetTokenGenerator("key")

	token, err := g.Generate()
	require.NoError(t, err)

	digest := g.Digest(token)
	assert.NotEqual(t, token, digest)
	assert.Equal(t, digest, g.Digest(token))
	assert.NotEqual(t, digest, NewResetTokenGenerator("other").Digest(token))
}
