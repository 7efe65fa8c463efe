// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver is an in-memory implementation of the remote notes
// service.
//
// It serves the same JSON endpoints the client talks to (POST /register and
// POST /download) and adds POST /dev/notes, which stands in for mail being
// delivered to an alias. It backs local development through cmd/devserver
// and the end-to-end tests of the client.
package devserver
