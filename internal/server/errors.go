// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPHandler is returned by NewServer when handlers carry no HTTP
	// handler to serve.
	ErrNoHTTPHandler = errors.New("no HTTP handler to serve")

	// ErrEmptyHTTPAddress is returned by NewServer when no listen address is
	// configured.
	ErrEmptyHTTPAddress = errors.New("HTTP listen address is empty")
)
