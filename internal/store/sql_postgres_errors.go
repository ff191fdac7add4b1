// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification says whether a failed statement may be retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier is the [ErrorClassificator] behind the [DB] retry loop
// for the server's reads and the startup ping.
//
// Only two groups of SQLSTATEs are retried:
//   - the connection dropped or the server is restarting (class 08, 57P01,
//     57P03);
//   - a concurrent write won a serialization or lock conflict (40001, 40P01).
//
// The codes the repositories translate into their own errors fail at once:
// unique_violation on users.email ([ErrEmailAlreadyExists]),
// foreign_key_violation on notes.user_id and invalid_text_representation
// for a malformed note id ([ErrNoteNotFound]). Unknown codes and non-Postgres
// errors are not retried either.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow:
		return Retryable

	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	default:
		return NonRetryable
	}
}
