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

package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	t.Parallel()

	c := Samples()
	require.Equal(t, 10, c.Len())

	songs := c.Songs()
	assert.Equal(t, songlist.Song{Title: "Blinding Lights", Artist: "The Weeknd", Duration: "3:20"}, songs[0])
	assert.Equal(t, songlist.Song{Title: "Good 4 U", Artist: "Olivia Rodrigo", Duration: "2:58"}, songs[9])
}

func TestFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{name: "three", n: 3, expected: 3},
		{name: "zero", n: 0, expected: 0},
		{name: "negative", n: -1, expected: 0},
		{name: "more than available", n: 50, expected: 10},
	}

	c := Samples()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.First(tt.n)
			assert.Len(t, got, tt.expected)
		})
	}

	first := c.First(3)
	assert.Equal(t, []string{"Blinding Lights", "Shape of You", "Dance Monkey"},
		[]string{first[0].Title, first[1].Title, first[2].Title})
}

func TestFirstReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Samples()
	got := c.First(1)
	got[0].Title = "changed"
	assert.Equal(t, "Blinding Lights", c.First(1)[0].Title)
}

func TestRandomIsDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	c := Samples()
	a := c.Random(rand.New(rand.NewPCG(1, 2)))
	b := c.Random(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
	assert.Contains(t, c.Songs(), a)
	assert.Contains(t, c.Songs(), c.Random(nil))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	data := "title,artist,duration\n" +
		"Song A,Artist A,1:00\n" +
		"  ,Nobody,0:00\n" +
		"Song B , Artist B ,\n"
	require.NoError(t, afero.WriteFile(fs, "/catalog.csv", []byte(data), 0o600))

	c, err := Load(fs, "/catalog.csv")
	require.NoError(t, err)
	assert.Equal(t, []songlist.Song{
		{Title: "Song A", Artist: "Artist A", Duration: "1:00"},
		{Title: "Song B", Artist: "Artist B", Duration: ""},
	}, c.Songs())
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	data := "songs:\n" +
		"  - title: Song A\n" +
		"    artist: Artist A\n" +
		"    duration: \"1:00\"\n" +
		"  - title: \"\"\n" +
		"    artist: Nobody\n" +
		"  - title: \" Song B \"\n" +
		"    artist: Artist B\n"
	require.NoError(t, afero.WriteFile(fs, "/catalog.YML", []byte(data), 0o600))

	c, err := Load(fs, "/catalog.YML")
	require.NoError(t, err)
	assert.Equal(t, []songlist.Song{
		{Title: "Song A", Artist: "Artist A", Duration: "1:00"},
		{Title: "Song B", Artist: "Artist B", Duration: ""},
	}, c.Songs())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/empty.csv", []byte("title,artist,duration\n"), 0o600))

	_, err := Load(fs, "/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")

	_, err = Load(fs, "/empty.csv")
	require.ErrorIs(t, err, ErrEmptyCatalog)

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("songs: [unclosed"), 0o600))
	_, err = Load(fs, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal catalog YAML")

	require.NoError(t, afero.WriteFile(fs, "/none.yaml", []byte("songs: []\n"), 0o600))
	_, err = Load(fs, "/none.yaml")
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoadOrSamples(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/one.csv", []byte("title,artist,duration\nOnly,One,1:11\n"), 0o600))

	assert.Equal(t, 10, LoadOrSamples(fs, "").Len())
	assert.Equal(t, 10, LoadOrSamples(fs, "/missing.csv").Len())
	assert.Equal(t, 1, LoadOrSamples(fs, "/one.csv").Len())
}
