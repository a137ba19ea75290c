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
	"github.com/rs/zerolog/log"
)

// walk visits nodes from the head along forward links until the chain ends,
// returns to the head, or fn returns false. It fails with ErrTraversalCeiling
// when more steps than the ceiling would be needed.
func (l *List) walk(fn func(h handle) bool) error {
	h := l.head
	for steps := 0; h != nilHandle; steps++ {
		if steps >= l.ceiling {
			log.Error().
				Int("ceiling", l.ceiling).
				Int("size", l.size).
				Str("topology", l.topology.String()).
				Msg("songlist: traversal ceiling reached, chain is broken")
			return ErrTraversalCeiling
		}
		if !fn(h) {
			return nil
		}
		h = l.nodes.at(h).next
		if h == l.head {
			return nil
		}
	}
	return nil
}

// All enumerates the list from head to tail, flagging the current node.
// Ring enumerations stop on returning to the head and end with a single wrap
// marker. On ErrTraversalCeiling the entries gathered so far are returned
// without a marker. Calling All again from the same state yields the same
// sequence.
func (l *List) All() ([]Entry, error) {
	if l.head == nilHandle {
		return []Entry{}, nil
	}

	entries := make([]Entry, 0, min(l.size, l.ceiling)+1)
	err := l.walk(func(h handle) bool {
		entries = append(entries, Entry{Kind: EntryNode, Node: l.snapshot(h)})
		return true
	})
	if err != nil {
		return entries, err
	}

	if l.topology.Wraps() {
		entries = append(entries, Entry{
			Kind:    EntryWrap,
			WrapsTo: l.nodes.at(l.head).song.Title,
		})
	}
	return entries, nil
}

// Songs enumerates the node entries only, without the ring marker.
func (l *List) Songs() ([]Node, error) {
	entries, err := l.All()
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		if !e.IsMarker() {
			nodes = append(nodes, e.Node)
		}
	}
	return nodes, err
}
