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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopology is returned when a topology name is not one of
// forward, bidirectional or ring.
var ErrUnknownTopology = errors.New("unknown topology")

// Topology is the linkage discipline of a List.
type Topology int

const (
	// Forward lists only link each node to its successor.
	Forward Topology = iota
	// Bidirectional lists also link each node back to its predecessor.
	Bidirectional
	// Ring lists are bidirectional with the tail linked back to the head.
	Ring
)

// Topologies returns every supported topology in selection order.
func Topologies() []Topology {
	return []Topology{Forward, Bidirectional, Ring}
}

// ParseTopology converts a configuration name into a Topology.
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "forward":
		return Forward, nil
	case "bidirectional":
		return Bidirectional, nil
	case "ring":
		return Ring, nil
	default:
		return Forward, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}

// String returns the configuration name of the topology.
func (t Topology) String() string {
	switch t {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// DisplayName returns the human readable name reported in Stats.
func (t Topology) DisplayName() string {
	switch t {
	case Forward:
		return "Singly Linked List"
	case Bidirectional:
		return "Doubly Linked List"
	case Ring:
		return "Circular Linked List"
	default:
		return "Unknown"
	}
}

// CanGoBackward reports whether the cursor can move toward the head.
func (t Topology) CanGoBackward() bool {
	return t == Bidirectional || t == Ring
}

// KeepsBackLinks reports whether nodes store a link to their predecessor.
func (t Topology) KeepsBackLinks() bool {
	return t != Forward
}

// Wraps reports whether the tail links back to the head.
func (t Topology) Wraps() bool {
	return t == Ring
}

// Next returns the topology after t, cycling back to Forward.
func (t Topology) Next() Topology {
	all := Topologies()
	for i, v := range all {
		if v == t {
			return all[(i+1)%len(all)]
		}
	}
	return Forward
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	switch t {
	case Forward, Bidirectional, Ring:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	parsed, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
