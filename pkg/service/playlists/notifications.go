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

package playlists

import "github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"

const (
	NotificationAdded    = "playlist.added"
	NotificationRemoved  = "playlist.removed"
	NotificationCleared  = "playlist.cleared"
	NotificationMoved    = "playlist.moved"
	NotificationPlayed   = "playlist.played"
	NotificationTopology = "playlist.topology"
)

// Notification reports a change to the playlist along with the statistics
// after the change.
type Notification struct {
	Method string
	Stats  songlist.Stats
}

// TopologyInfo returns short notes describing how a topology navigates.
func TopologyInfo(t songlist.Topology) []string {
	switch t {
	case songlist.Forward:
		return []string{
			"Only forward navigation (next)",
			"Simple pointer structure",
		}
	case songlist.Bidirectional:
		return []string{
			"Forward & backward navigation",
			"Each node has next AND prev pointers",
		}
	case songlist.Ring:
		return []string{
			"Continuous loop navigation",
			"Last node points to first",
			"Infinite playlist!",
		}
	default:
		return nil
	}
}
