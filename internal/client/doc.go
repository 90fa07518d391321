// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the quote client runtime.
//
// It wires stores, the remote adapter, the quote engine and background
// workers into an [App], and exposes them through google/subcommands
// commands: the interactive TUI plus one-shot commands for scripting.
package client
