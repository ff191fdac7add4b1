// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for passwords
// longer than MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password length exceeds 72 bytes")
