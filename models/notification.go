// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdleSyncMessage is shown when no sync activity is being reported.
const IdleSyncMessage = "Sync idle"

// NotificationLevel classifies a transient status message.
type NotificationLevel int

const (
	LevelIdle NotificationLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// Color returns the display color for the level as a hex RGB string.
func (l NotificationLevel) Color() string {
	switch l {
	case LevelInfo:
		return "#1e88e5"
	case LevelSuccess:
		return "#2e7d32"
	case LevelWarning:
		return "#f9a825"
	case LevelError:
		return "#c62828"
	default:
		return "#757575"
	}
}

// Notification is a transient sync-status message pushed to the UI sink.
type Notification struct {
	Message string            `json:"message"`
	Level   NotificationLevel `json:"level"`
}

// IdleNotification is the message the sink falls back to after a pass.
func IdleNotification() Notification {
	return Notification{Message: IdleSyncMessage, Level: LevelIdle}
}
