// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging, CORS and response
// compression are handled in this package before requests are delegated to
// the service layer. Service errors are turned into status codes by a
// single table in statusFromError.
package http
