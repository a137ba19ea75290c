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

package songlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Topology
		wantErr bool
	}{
		{input: "forward", want: Forward},
		{input: "Bidirectional", want: Bidirectional},
		{input: " RING ", want: Ring},
		{input: "circular", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTopology(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownTopology)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopologyCapabilities(t *testing.T) {
	t.Parallel()

	assert.False(t, Forward.CanGoBackward())
	assert.False(t, Forward.Wraps())
	assert.True(t, Bidirectional.CanGoBackward())
	assert.False(t, Bidirectional.Wraps())
	assert.True(t, Ring.CanGoBackward())
	assert.True(t, Ring.Wraps())

	assert.False(t, Forward.KeepsBackLinks())
	assert.True(t, Bidirectional.KeepsBackLinks())
	assert.True(t, Ring.KeepsBackLinks())
}

func TestTopologyNextCycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Bidirectional, Forward.Next())
	assert.Equal(t, Ring, Bidirectional.Next())
	assert.Equal(t, Forward, Ring.Next())
}

func TestTopologyText(t *testing.T) {
	t.Parallel()

	for _, topology := range Topologies() {
		text, err := topology.MarshalText()
		require.NoError(t, err)

		var parsed Topology
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, topology, parsed)
	}

	_, err := Topology(42).MarshalText()
	require.ErrorIs(t, err, ErrUnknownTopology)

	var bad Topology
	require.Error(t, bad.UnmarshalText([]byte("sideways")))
}
