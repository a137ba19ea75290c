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

import "fmt"

// NoneTitle is reported in Stats when a reference is empty.
const NoneTitle = "None"

// Song holds the data of a single playlist entry. Duration is free-form
// and never parsed.
type Song struct {
	Title    string
	Artist   string
	Duration string
}

// NodeID identifies a node within a List. IDs are never reused by the list
// that issued them, so comparing IDs before and after an operation tells
// whether the cursor moved. The zero value is not a valid ID.
type NodeID uint64

// Node is a read-only snapshot of a list node. IsCurrent is derived when the
// snapshot is taken and is not updated afterwards.
type Node struct {
	Song
	ID        NodeID
	IsCurrent bool
}

// String formats the node as "Title - Artist (Duration)".
func (n Node) String() string {
	return fmt.Sprintf("%s - %s (%s)", n.Title, n.Artist, n.Duration)
}

// EntryKind discriminates the items returned by List.All.
type EntryKind int

const (
	// EntryNode is a regular node entry.
	EntryNode EntryKind = iota
	// EntryWrap is the synthetic marker closing a ring enumeration.
	EntryWrap
)

// Entry is one item of an enumeration. Wrap markers carry the title of the
// head the ring returns to and an empty Node.
type Entry struct {
	WrapsTo string
	Node    Node
	Kind    EntryKind
}

// IsMarker reports whether the entry is the ring wraparound marker.
func (e Entry) IsMarker() bool {
	return e.Kind == EntryWrap
}

func (e Entry) String() string {
	if e.IsMarker() {
		return "↻ (Circular - back to: " + e.WrapsTo + ")"
	}
	return e.Node.String()
}
