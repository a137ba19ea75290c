// Zaparoo Playlist
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Playlist.
//
// Zaparoo Playlist is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Playlist is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Playlist.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/config"
	"github.com/adrg/xdg"
)

// HomeEnv overrides every directory with a single portable root.
const HomeEnv = "ZAPAROO_PLAYLIST_HOME"

// Dirs lists where the application keeps its files.
type Dirs struct {
	ConfigDir string
	DataDir   string
	TempDir   string
	LogDir    string
}

// DefaultDirs returns the XDG locations for the application, or
// subdirectories of HomeEnv when it is set.
func DefaultDirs() Dirs {
	if home := os.Getenv(HomeEnv); home != "" {
		return DirsIn(home)
	}
	return Dirs{
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		DataDir:   filepath.Join(xdg.DataHome, config.AppName),
		TempDir:   filepath.Join(os.TempDir(), config.AppName),
		LogDir:    filepath.Join(xdg.StateHome, config.AppName),
	}
}

// DirsIn lays out every directory below root.
func DirsIn(root string) Dirs {
	return Dirs{
		ConfigDir: root,
		DataDir:   root,
		TempDir:   filepath.Join(root, "tmp"),
		LogDir:    filepath.Join(root, "logs"),
	}
}

// EnsureDirectories creates the temp and log directories if they're missing.
// Config and data directories are created on demand by their owners.
func EnsureDirectories(dirs Dirs) error {
	if err := os.MkdirAll(dirs.TempDir, 0o750); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	if err := os.MkdirAll(dirs.LogDir, 0o750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}
