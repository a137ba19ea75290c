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

// Package catalog provides the songs offered for quick insertion: a small
// built-in sample set, or a user supplied CSV or YAML file.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed samples.csv
var embeddedSamples []byte

// ErrEmptyCatalog is returned when a catalog file holds no usable songs.
var ErrEmptyCatalog = errors.New("catalog has no songs")

// Entry is one song of a catalog file.
type Entry struct {
	Title    string `csv:"title" yaml:"title"`
	Artist   string `csv:"artist" yaml:"artist"`
	Duration string `csv:"duration" yaml:"duration"`
}

// yamlFile is the layout of a YAML catalog:
//
//	songs:
//	  - title: Blinding Lights
//	    artist: The Weeknd
//	    duration: "3:20"
type yamlFile struct {
	Songs []Entry `yaml:"songs"`
}

// Catalog is a read-only list of songs. It is safe for concurrent use.
type Catalog struct {
	songs []songlist.Song
}

// Samples returns the built-in sample catalog.
func Samples() *Catalog {
	c, err := decodeCSV(embeddedSamples)
	if err != nil {
		// embedded file is fixed at build time
		panic(fmt.Sprintf("invalid embedded samples: %v", err))
	}
	return c
}

// Load reads a catalog file. Files ending in .yaml or .yml hold a list of
// songs, anything else is read as CSV with title, artist and duration
// columns. Songs with a blank title or artist are skipped.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c *Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = decodeYAML(data)
	default:
		c, err = decodeCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	log.Debug().Int("songs", c.Len()).Str("path", path).Msg("loaded catalog")
	return c, nil
}

// LoadOrSamples loads the catalog at path, falling back to the built-in
// samples when path is empty or the file cannot be used.
func LoadOrSamples(fs afero.Fs, path string) *Catalog {
	if path == "" {
		return Samples()
	}
	c, err := Load(fs, path)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in sample catalog")
		return Samples()
	}
	return c
}

func decodeCSV(data []byte) (*Catalog, error) {
	entries := make([]Entry, 0)
	if err := gocsv.Unmarshal(bytes.NewReader(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog CSV: %w", err)
	}
	return fromEntries(entries)
}

func decodeYAML(data []byte) (*Catalog, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}
	return fromEntries(f.Songs)
}

func fromEntries(entries []Entry) (*Catalog, error) {
	songs := make([]songlist.Song, 0, len(entries))
	for i, e := range entries {
		title := strings.TrimSpace(e.Title)
		artist := strings.TrimSpace(e.Artist)
		if title == "" || artist == "" {
			log.Debug().Int("entry", i+1).Msg("skipping catalog entry without title or artist")
			continue
		}
		songs = append(songs, songlist.Song{
			Title:    title,
			Artist:   artist,
			Duration: strings.TrimSpace(e.Duration),
		})
	}
	if len(songs) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{songs: songs}, nil
}

// Len returns the number of songs in the catalog.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns a copy of every song in file order.
func (c *Catalog) Songs() []songlist.Song {
	out := make([]songlist.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// First returns up to n songs from the start of the catalog.
func (c *Catalog) First(n int) []songlist.Song {
	n = min(max(n, 0), len(c.songs))
	out := make([]songlist.Song, n)
	copy(out, c.songs[:n])
	return out
}

// Random picks one song. A nil r uses the global source.
func (c *Catalog) Random(r *rand.Rand) songlist.Song {
	if r == nil {
		return c.songs[rand.IntN(len(c.songs))] //nolint:gosec // not security sensitive
	}
	return c.songs[r.IntN(len(c.songs))]
}
