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


package config

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/spf13/afero"
	"pgregory.net/rapid"
)

// TestPropertySeedSamplesNeverNegative verifies any stored count reads back
// clamped at zero.
func TestPropertySeedSamplesNeverNegative(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1000, 1000).Draw(t, "n")

		cfg := &Instance{}
		cfg.SetSeedSamples(n)
		got := cfg.SeedSamples()
		if got < 0 {
			t.Fatalf("SeedSamples() = %d for stored %d", got, n)
		}
		if n >= 0 && got != n {
			t.Fatalf("SeedSamples() = %d, want %d", got, n)
		}
	})
}

// TestPropertyTopologySurvivesSave verifies every topology is read back
// unchanged after a save and reload.
func TestPropertyTopologySurvivesSave(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		topology := rapid.SampledFrom(songlist.Topologies()).Draw(t, "topology")
		theme := rapid.StringMatching(`[a-z_]{1,16}`).Draw(t, "theme")

		fs := afero.NewMemMapFs()
		cfg, err := NewConfig(fs, "/config", BaseDefaults)
		if err != nil {
			t.Fatalf("NewConfig: %v", err)
		}
		cfg.SetTopology(topology)
		cfg.SetTheme(theme)
		if err := cfg.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}

		reloaded, err := NewConfig(fs, "/config", BaseDefaults)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if got := reloaded.Topology(); got != topology {
			t.Fatalf("Topology() = %v, want %v", got, topology)
		}
		if got := reloaded.Theme(); got != theme {
			t.Fatalf("Theme() = %q, want %q", got, theme)
		}
	})
}

// TestPropertyTraversalCeilingAlwaysPositive verifies unset or invalid
// ceilings fall back to the default.
func TestPropertyTraversalCeilingAlwaysPositive(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		steps := rapid.IntRange(-100, 100).Draw(t, "steps")

		cfg := &Instance{}
		cfg.vals.Playlist.TraversalCeiling = steps
		got := cfg.TraversalCeiling()
		if got <= 0 {
			t.Fatalf("TraversalCeiling() = %d for stored %d", got, steps)
		}
		if steps > 0 && got != steps {
			t.Fatalf("TraversalCeiling() = %d, want %d", got, steps)
		}
	})
}
