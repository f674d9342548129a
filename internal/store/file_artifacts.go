// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/internal/logger"
)

// artifactFileStorage keeps uploaded program bytes as one file per content
// id under a single directory.
type artifactFileStorage struct {
	dir string
}

// NewArtifactFileStorage returns an [ArtifactStorage] rooted at dir. The
// directory is created when missing.
func NewArtifactFileStorage(dir string) (ArtifactStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating artifact directory: %w", err)
	}
	return &artifactFileStorage{dir: dir}, nil
}

// Save writes data under contentID. The file appears atomically; identical
// content ids share a single file.
func (s *artifactFileStorage) Save(ctx context.Context, contentID string, data []byte) error {
	path, err := s.path(contentID)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temp artifact file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing artifact: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing artifact: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "artifactFileStorage.Save").
			Str("content_id", contentID).
			Msg("failed to move artifact into place")
		return fmt.Errorf("error storing artifact: %w", err)
	}

	return nil
}

func (s *artifactFileStorage) Load(ctx context.Context, contentID string) ([]byte, error) {
	path, err := s.path(contentID)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, contentID)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading artifact: %w", err)
	}

	return data, nil
}

// Delete removes the artifact. Deleting a missing artifact is not an error.
func (s *artifactFileStorage) Delete(ctx context.Context, contentID string) error {
	path, err := s.path(contentID)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting artifact: %w", err)
	}

	return nil
}

func (s *artifactFileStorage) path(contentID string) (string, error) {
	if !hugr.ValidContentID(contentID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidContentID, contentID)
	}
	return filepath.Join(s.dir, contentID), nil
}
