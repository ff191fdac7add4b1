// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes command-line client.
//
// Each invocation runs one command (login, list, add, ...) against the
// client services. The session saved by register or login is loaded from
// the local store and handed to every command that needs it.
package client
