// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getKeyValue = `
		SELECT value
		FROM kv
		WHERE key = ?;`

	putKeyValue = `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteKeyValue = `
		DELETE FROM kv
		WHERE key = ?;`
)
