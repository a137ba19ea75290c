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


// Package fixtures holds fixed test data that is distinct from the built-in
// sample catalog.
package fixtures

import (
	"github.com/ZaparooProject/zaparoo-playlist/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/testing/helpers"
)

// CatalogPath is where WriteCatalog puts the fixture catalog.
const CatalogPath = "/data/catalog.csv"

// Songs returns four songs in a fixed order.
func Songs() []songlist.Song {
	return []songlist.Song{
		{Title: "Come Together", Artist: "The Beatles", Duration: "4:20"},
		{Title: "Hotel California", Artist: "Eagles", Duration: "6:30"},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana", Duration: "5:01"},
		{Title: "Wonderwall", Artist: "Oasis", Duration: "4:18"},
	}
}

// WriteCatalog writes Songs as a catalog file at CatalogPath.
func WriteCatalog(fs *helpers.FSHelper) error {
	return fs.CreateCatalog(CatalogPath, Songs())
}

// Catalog returns Songs as a catalog.
func Catalog() *catalog.Catalog {
	fs := helpers.NewMemoryFS()
	if err := WriteCatalog(fs); err != nil {
		panic(err)
	}
	c, err := catalog.Load(fs.Fs, CatalogPath)
	if err != nil {
		panic(err)
	}
	return c
}

// NewPlayer returns a player holding every fixture song, current on the
// first.
func NewPlayer(topology songlist.Topology, opts ...playlists.Option) *playlists.Player {
	opts = append([]playlists.Option{playlists.WithCatalog(Catalog())}, opts...)
	p := playlists.NewPlayer(topology, opts...)
	p.AddSamples(len(Songs()))
	return p
}
