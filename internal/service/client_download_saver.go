// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// maxNameAttempts bounds the " (n)" suffixes tried for a free file name.
const maxNameAttempts = 1000

// ErrNoFreeFileName is returned when every candidate file name is taken.
var ErrNoFreeFileName = errors.New("no free file name")

type fsDownloadSaver struct {
	fs  afero.Fs
	dir string
}

// NewDownloadSaver returns a [DownloadSaver] writing into dir on fs.
func NewDownloadSaver(fs afero.Fs, dir string) DownloadSaver {
	return &fsDownloadSaver{fs: fs, dir: dir}
}

// Save implements [DownloadSaver]. A taken name gets a " (n)" suffix before
// its extension.
func (s *fsDownloadSaver) Save(name string, data []byte) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		base = "download"
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 0; n < maxNameAttempts; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(s.dir, candidate)

		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			continue
		}

		if err = afero.WriteFile(s.fs, path, data, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("%w for %s", ErrNoFreeFileName, base)
}
