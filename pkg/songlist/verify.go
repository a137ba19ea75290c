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
)

// Invariant names reported by InvariantError.
const (
	InvariantEmpty     = "empty"
	InvariantBoundary  = "boundary"
	InvariantSize      = "size"
	InvariantCurrent   = "current"
	InvariantSymmetry  = "link-symmetry"
	InvariantRing      = "ring"
	InvariantTerminal  = "terminal"
	InvariantTraversal = "traversal"
)

// InvariantError describes the first broken invariant found by Verify.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("songlist: %s invariant violated: %s", e.Invariant, e.Detail)
}

func violated(invariant, format string, args ...any) error {
	return &InvariantError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}

// Verify checks the structural invariants of the list and returns an
// *InvariantError for the first one that does not hold.
func (l *List) Verify() error {
	if l.size == 0 || l.head == nilHandle || l.tail == nilHandle || l.current == nilHandle {
		return l.verifyEmpty()
	}

	if l.nodes.live() != l.size {
		return violated(InvariantSize, "size %d but %d live nodes", l.size, l.nodes.live())
	}

	count := 0
	last := nilHandle
	sawCurrent := false
	var linkErr error
	err := l.walk(func(h handle) bool {
		if !l.nodes.valid(h) {
			linkErr = violated(InvariantTerminal, "link to released node %d", h)
			return false
		}
		count++
		if h == l.current {
			sawCurrent = true
		}
		n := l.nodes.at(h)
		if n.next != nilHandle && !l.nodes.valid(n.next) {
			linkErr = violated(InvariantTerminal, "%q links to released node %d", n.song.Title, n.next)
			return false
		}
		if l.topology.KeepsBackLinks() && n.next != nilHandle && l.nodes.at(n.next).prev != h {
			linkErr = violated(InvariantSymmetry, "%q.next.prev does not point back", n.song.Title)
			return false
		}
		if !l.topology.KeepsBackLinks() && n.prev != nilHandle {
			linkErr = violated(InvariantSymmetry, "forward node %q has a back-link", n.song.Title)
			return false
		}
		last = h
		return true
	})
	if errors.Is(err, ErrTraversalCeiling) {
		return violated(InvariantTraversal, "walk exceeded %d steps", l.ceiling)
	}
	if linkErr != nil {
		return linkErr
	}

	if count != l.size {
		return violated(InvariantSize, "size %d but %d reachable nodes", l.size, count)
	}
	if last != l.tail {
		return violated(InvariantBoundary, "walk ended on %q, tail is %q",
			l.nodes.at(last).song.Title, l.nodes.at(l.tail).song.Title)
	}
	if !sawCurrent {
		return violated(InvariantCurrent, "current is not reachable from head")
	}

	head, tail := l.nodes.at(l.head), l.nodes.at(l.tail)
	if l.topology.Wraps() {
		if tail.next != l.head || head.prev != l.tail {
			return violated(InvariantRing, "tail and head are not linked to each other")
		}
		return nil
	}
	if tail.next != nilHandle {
		return violated(InvariantTerminal, "tail has a successor")
	}
	if head.prev != nilHandle {
		return violated(InvariantTerminal, "head has a predecessor")
	}
	return nil
}

func (l *List) verifyEmpty() error {
	if l.head == nilHandle && l.tail == nilHandle && l.current == nilHandle && l.size == 0 {
		if l.nodes.live() != 0 {
			return violated(InvariantEmpty, "empty list holds %d live nodes", l.nodes.live())
		}
		return nil
	}
	if (l.head == nilHandle) != (l.tail == nilHandle) {
		return violated(InvariantBoundary, "only one of head and tail is set")
	}
	return violated(InvariantEmpty,
		"size %d with head set %t, current set %t",
		l.size, l.head != nilHandle, l.current != nilHandle)
}
