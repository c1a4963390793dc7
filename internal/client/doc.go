// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application.
//
// It wires configuration, the session store, the session-aware API client
// and the client services into cobra commands, one process per command.
package client
