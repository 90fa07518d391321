// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dirArtifactStore writes exports as files into a directory.
type dirArtifactStore struct {
	dir string
}

// NewDirArtifactStore returns an [ArtifactStore] writing into dir. The
// directory is created on first save.
func NewDirArtifactStore(dir string) ArtifactStore {
	return &dirArtifactStore{dir: dir}
}

func (s *dirArtifactStore) Save(_ context.Context, name string, data []byte) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}
