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

// Package songlist implements an insertion-ordered playlist held in one of
// three linkage disciplines: forward-only, bidirectional and ring.
//
// A List is not safe for concurrent use. Invariants hold between calls, never
// during one; callers sharing a List across goroutines must serialise every
// operation.
package songlist

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// DefaultTraversalCeiling bounds every walk over a chain. It sits far above
// any realistic playlist and is only reached when the links are corrupt.
const DefaultTraversalCeiling = 1 << 20

// ErrTraversalCeiling is returned when a walk exceeds the traversal ceiling,
// which means the chain no longer terminates where it should.
var ErrTraversalCeiling = errors.New("traversal ceiling reached")

// Option configures a List.
type Option func(*List)

// WithTraversalCeiling overrides DefaultTraversalCeiling. Values below 1 are
// ignored.
func WithTraversalCeiling(steps int) Option {
	return func(l *List) {
		if steps > 0 {
			l.ceiling = steps
		}
	}
}

// List is a playlist with a playback cursor.
type List struct {
	nodes    arena
	head     handle
	tail     handle
	current  handle
	size     int
	ceiling  int
	topology Topology
}

// New returns an empty list with the given topology.
func New(topology Topology, opts ...Option) *List {
	l := &List{
		head:     nilHandle,
		tail:     nilHandle,
		current:  nilHandle,
		ceiling:  DefaultTraversalCeiling,
		topology: topology,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Topology returns the linkage discipline of the list.
func (l *List) Topology() Topology {
	return l.topology
}

// Len returns the number of songs in the list.
func (l *List) Len() int {
	return l.size
}

// Current returns the node under playback focus.
func (l *List) Current() (Node, bool) {
	return l.snapshotOK(l.current)
}

// Head returns the first node.
func (l *List) Head() (Node, bool) {
	return l.snapshotOK(l.head)
}

// Tail returns the last node.
func (l *List) Tail() (Node, bool) {
	return l.snapshotOK(l.tail)
}

// Add appends a song at the tail and returns the new node. The cursor is
// placed on the head only when the list was empty.
func (l *List) Add(title, artist, duration string) Node {
	return l.AddSong(Song{Title: title, Artist: artist, Duration: duration})
}

// AddSong is Add taking a Song.
func (l *List) AddSong(song Song) Node {
	h := l.nodes.alloc(song)

	switch {
	case l.topology.Wraps():
		l.appendRing(h)
	case l.topology.KeepsBackLinks():
		l.appendBidirectional(h)
	default:
		l.appendForward(h)
	}

	l.size++
	return l.snapshot(h)
}

func (l *List) appendForward(h handle) {
	if l.head == nilHandle {
		l.head, l.tail, l.current = h, h, h
		return
	}
	l.nodes.at(l.tail).next = h
	l.tail = h
}

func (l *List) appendBidirectional(h handle) {
	if l.head == nilHandle {
		l.head, l.tail, l.current = h, h, h
		return
	}
	l.nodes.at(h).prev = l.tail
	l.nodes.at(l.tail).next = h
	l.tail = h
}

func (l *List) appendRing(h handle) {
	n := l.nodes.at(h)
	if l.head == nilHandle {
		n.next, n.prev = h, h
		l.head, l.tail, l.current = h, h, h
		return
	}
	n.prev = l.tail
	n.next = l.head
	l.nodes.at(l.tail).next = h
	l.nodes.at(l.head).prev = h
	l.tail = h
}

// RemoveCurrent deletes the node under the cursor and returns the new
// current node. On an empty list it does nothing and reports false.
func (l *List) RemoveCurrent() (Node, bool) {
	if l.current == nilHandle {
		return Node{}, false
	}

	removed := l.current
	var next handle
	switch {
	case l.topology.Wraps():
		next = l.unlinkRing(removed)
	case l.topology.KeepsBackLinks():
		next = l.unlinkBidirectional(removed)
	default:
		next = l.unlinkForward(removed)
	}

	l.nodes.release(removed)
	l.current = next
	l.size--

	return l.snapshotOK(l.current)
}

// unlinkForward finds the predecessor by scanning from the head since
// forward nodes carry no back-link. The cursor moves to the successor, or to
// the head when the removed node was the tail.
func (l *List) unlinkForward(h handle) handle {
	n := l.nodes.at(h)

	if l.head == h {
		l.head = n.next
		if l.head == nilHandle {
			l.tail = nilHandle
		}
	} else {
		pred := l.head
		for steps := 0; pred != nilHandle && l.nodes.at(pred).next != h; steps++ {
			if steps >= l.ceiling {
				log.Error().Msg("songlist: predecessor scan hit traversal ceiling")
				pred = nilHandle
				break
			}
			pred = l.nodes.at(pred).next
		}
		if pred != nilHandle {
			l.nodes.at(pred).next = n.next
			if l.tail == h {
				l.tail = pred
			}
		}
	}

	if n.next != nilHandle {
		return n.next
	}
	return l.head
}

// unlinkBidirectional removes h in constant time. The cursor prefers the
// successor, then the predecessor.
func (l *List) unlinkBidirectional(h handle) handle {
	n := l.nodes.at(h)
	pred, succ := n.prev, n.next

	if pred != nilHandle {
		l.nodes.at(pred).next = succ
	} else {
		l.head = succ
	}

	if succ != nilHandle {
		l.nodes.at(succ).prev = pred
	} else {
		l.tail = pred
	}

	if succ != nilHandle {
		return succ
	}
	return pred
}

// unlinkRing removes h and re-closes the ring so that tail.next is the head
// and head.prev is the tail, whichever node was removed.
func (l *List) unlinkRing(h handle) handle {
	if l.size == 1 {
		l.head, l.tail = nilHandle, nilHandle
		return nilHandle
	}

	n := l.nodes.at(h)
	pred, succ := n.prev, n.next
	l.nodes.at(pred).next = succ
	l.nodes.at(succ).prev = pred

	if l.head == h {
		l.head = succ
	}
	if l.tail == h {
		l.tail = pred
	}
	l.closeRing()

	return succ
}

func (l *List) closeRing() {
	l.nodes.at(l.tail).next = l.head
	l.nodes.at(l.head).prev = l.tail
}

// NextSong moves the cursor forward. Forward and bidirectional lists stay on
// the tail; rings always move.
func (l *List) NextSong() (Node, bool) {
	if l.current == nilHandle {
		return Node{}, false
	}
	if next := l.nodes.at(l.current).next; next != nilHandle {
		l.current = next
	}
	return l.snapshot(l.current), true
}

// PrevSong moves the cursor backward. It is the identity on forward lists
// and stays on the head of bidirectional lists.
func (l *List) PrevSong() (Node, bool) {
	if l.current == nilHandle {
		return Node{}, false
	}
	if !l.topology.CanGoBackward() {
		return l.snapshot(l.current), true
	}
	if prev := l.nodes.at(l.current).prev; prev != nilHandle {
		l.current = prev
	}
	return l.snapshot(l.current), true
}

// SetCurrent moves the cursor to the node with the given ID if it is part of
// the chain. A walk that hits the traversal ceiling leaves the cursor where
// it was and returns ErrTraversalCeiling.
func (l *List) SetCurrent(id NodeID) (bool, error) {
	found := nilHandle
	err := l.walk(func(h handle) bool {
		if l.nodes.at(h).id == id {
			found = h
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	if found == nilHandle {
		return false, nil
	}
	l.current = found
	return true, nil
}

// Clear empties the list. Snapshots handed out earlier are unaffected.
func (l *List) Clear() {
	l.nodes.reset()
	l.head, l.tail, l.current = nilHandle, nilHandle, nilHandle
	l.size = 0
}

// Stats summarises the list for display.
type Stats struct {
	Type         string
	CurrentTitle string
	HeadTitle    string
	TailTitle    string
	Size         int
}

// Stats returns the list summary. Empty references are reported as "None".
func (l *List) Stats() Stats {
	return Stats{
		Type:         l.topology.DisplayName(),
		Size:         l.size,
		CurrentTitle: l.title(l.current),
		HeadTitle:    l.title(l.head),
		TailTitle:    l.title(l.tail),
	}
}

func (l *List) title(h handle) string {
	if h == nilHandle {
		return NoneTitle
	}
	return l.nodes.at(h).song.Title
}

func (l *List) snapshot(h handle) Node {
	s := l.nodes.at(h)
	return Node{
		Song:      s.song,
		ID:        s.id,
		IsCurrent: h == l.current,
	}
}

func (l *List) snapshotOK(h handle) (Node, bool) {
	if h == nilHandle {
		return Node{}, false
	}
	return l.snapshot(h), true
}
