// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mail notes client runtime.
//
// It registers the installation, then runs the polling scheduler next to the
// terminal status panel (or alone when headless) until the process is
// interrupted or the panel is closed.
package client
