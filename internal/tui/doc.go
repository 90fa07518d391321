// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the quote client.
//
// [Sink] receives engine output from any goroutine and forwards it to the
// bubbletea program as messages; the model turns key presses into engine
// calls run as commands.
package tui
