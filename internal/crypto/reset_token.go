// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes/internal/utils"
)

// resetTokenBytes is the amount of entropy in a reset token (256 bits).
const resetTokenBytes = 32

type resetTokenGenerator struct {
	hashKey string
}

// NewResetTokenGenerator constructs a [TokenGenerator] whose digests are
// HMAC-SHA256 values keyed with hashKey.
func NewResetTokenGenerator(hashKey string) TokenGenerator {
	return &resetTokenGenerator{hashKey: hashKey}
}

// Generate reads 32 bytes from the OS CSPRNG and hex-encodes them.
func (g *resetTokenGenerator) Generate() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error generating reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (g *resetTokenGenerator) Digest(token string) string {
	return utils.HashString(token, g.hashKey)
}
