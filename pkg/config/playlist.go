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
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/rs/zerolog/log"
)

// DefaultSeedSamples is how many catalog songs a fresh session starts with.
const DefaultSeedSamples = 3

// Playlist configures the active playlist.
type Playlist struct {
	SeedSamples      *int   `toml:"seed_samples,omitempty"`
	Topology         string `toml:"topology"`
	Catalog          string `toml:"catalog,omitempty"`
	TraversalCeiling int    `toml:"traversal_ceiling,omitempty"`
}

// Topology returns the configured linkage discipline. Unknown names fall
// back to forward.
func (c *Instance) Topology() songlist.Topology {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, err := songlist.ParseTopology(c.vals.Playlist.Topology)
	if err != nil {
		log.Warn().Err(err).Msg("invalid playlist topology in config, using forward")
		return songlist.Forward
	}
	return t
}

func (c *Instance) SetTopology(t songlist.Topology) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Playlist.Topology = t.String()
}

// SeedSamples returns how many catalog songs to add on startup.
// Returns DefaultSeedSamples if not configured, and never less than 0.
func (c *Instance) SeedSamples() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Playlist.SeedSamples == nil {
		return DefaultSeedSamples
	}
	return max(*c.vals.Playlist.SeedSamples, 0)
}

func (c *Instance) SetSeedSamples(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Playlist.SeedSamples = &n
}

// TraversalCeiling returns the step bound for list walks.
// Returns songlist.DefaultTraversalCeiling if unset or not positive.
func (c *Instance) TraversalCeiling() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Playlist.TraversalCeiling <= 0 {
		return songlist.DefaultTraversalCeiling
	}
	return c.vals.Playlist.TraversalCeiling
}

// CatalogPath returns the user catalog CSV, or an empty string to use the
// built-in samples.
func (c *Instance) CatalogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Playlist.Catalog
}
