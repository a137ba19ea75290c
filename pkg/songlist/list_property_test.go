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

	"pgregory.net/rapid"
)

// model is a slice-backed reference for the cursor semantics of each
// topology. cur is -1 when the model is empty.
type model struct {
	ids      []NodeID
	cur      int
	topology Topology
}

func (m *model) add(id NodeID) {
	m.ids = append(m.ids, id)
	if len(m.ids) == 1 {
		m.cur = 0
	}
}

func (m *model) next() {
	if m.cur < 0 {
		return
	}
	switch {
	case m.topology.Wraps():
		m.cur = (m.cur + 1) % len(m.ids)
	case m.cur < len(m.ids)-1:
		m.cur++
	}
}

func (m *model) prev() {
	if m.cur < 0 || !m.topology.CanGoBackward() {
		return
	}
	switch {
	case m.topology.Wraps():
		m.cur = (m.cur - 1 + len(m.ids)) % len(m.ids)
	case m.cur > 0:
		m.cur--
	}
}

func (m *model) remove() {
	if m.cur < 0 {
		return
	}
	idx := m.cur
	m.ids = append(m.ids[:idx], m.ids[idx+1:]...)
	switch {
	case len(m.ids) == 0:
		m.cur = -1
	case idx < len(m.ids):
		m.cur = idx
	case m.topology == Bidirectional:
		m.cur = idx - 1
	default:
		m.cur = 0
	}
}

func (m *model) current() (NodeID, bool) {
	if m.cur < 0 {
		return 0, false
	}
	return m.ids[m.cur], true
}

func topologyGen() *rapid.Generator[Topology] {
	return rapid.SampledFrom(Topologies())
}

func songGen() *rapid.Generator[Song] {
	return rapid.Custom(func(t *rapid.T) Song {
		return Song{
			Title:    rapid.String().Draw(t, "title"),
			Artist:   rapid.String().Draw(t, "artist"),
			Duration: rapid.String().Draw(t, "duration"),
		}
	})
}

func checkAgainstModel(t *rapid.T, l *List, m *model) {
	if err := l.Verify(); err != nil {
		t.Fatalf("invariant broken: %v", err)
	}
	if l.Len() != len(m.ids) {
		t.Fatalf("size %d, model has %d", l.Len(), len(m.ids))
	}

	songs, err := l.Songs()
	if err != nil {
		t.Fatalf("enumeration failed: %v", err)
	}
	for i, n := range songs {
		if n.ID != m.ids[i] {
			t.Fatalf("position %d holds node %d, model expects %d", i, n.ID, m.ids[i])
		}
	}

	want, wantOK := m.current()
	got, gotOK := l.Current()
	if wantOK != gotOK || got.ID != want {
		t.Fatalf("current is %d (%t), model expects %d (%t)", got.ID, gotOK, want, wantOK)
	}
}

// TestPropertyOperationsMatchModel applies random operation sequences and
// compares every step against the reference model.
func TestPropertyOperationsMatchModel(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		topology := topologyGen().Draw(t, "topology")
		l := New(topology)
		m := &model{topology: topology, cur: -1}

		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 1, 200).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0, 1:
				n := l.AddSong(songGen().Draw(t, "song"))
				m.add(n.ID)
			case 2:
				_, _ = l.NextSong()
				m.next()
			case 3:
				_, _ = l.PrevSong()
				m.prev()
			case 4:
				_, _ = l.RemoveCurrent()
				m.remove()
			}
			checkAgainstModel(t, l, m)
		}
	})
}

// TestPropertyAddTracksTail verifies k consecutive adds give size k with the
// last added node at the tail.
func TestPropertyAddTracksTail(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(topologyGen().Draw(t, "topology"))
		k := rapid.IntRange(1, 100).Draw(t, "k")

		var last Node
		for range k {
			last = l.AddSong(songGen().Draw(t, "song"))
		}

		if l.Len() != k {
			t.Fatalf("size %d after %d adds", l.Len(), k)
		}
		tail, ok := l.Tail()
		if !ok || tail.ID != last.ID {
			t.Fatalf("tail is %d, last added is %d", tail.ID, last.ID)
		}
	})
}

// TestPropertyForwardPrevIsIdentity verifies PrevSong never moves the cursor
// of a forward list.
func TestPropertyForwardPrevIsIdentity(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(Forward)
		n := rapid.IntRange(1, 50).Draw(t, "n")
		for range n {
			l.AddSong(songGen().Draw(t, "song"))
		}
		for range rapid.IntRange(0, n).Draw(t, "advance") {
			_, _ = l.NextSong()
		}

		before, _ := l.Current()
		after, _ := l.PrevSong()
		if before.ID != after.ID {
			t.Fatalf("PrevSong moved forward cursor from %d to %d", before.ID, after.ID)
		}
	})
}

// TestPropertyBidirectionalRoundTrip verifies next/prev undo each other when
// the neighbour exists.
func TestPropertyBidirectionalRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(Bidirectional)
		n := rapid.IntRange(2, 50).Draw(t, "n")
		for range n {
			l.AddSong(songGen().Draw(t, "song"))
		}
		pos := rapid.IntRange(0, n-2).Draw(t, "position")
		for range pos {
			_, _ = l.NextSong()
		}

		start, _ := l.Current()
		_, _ = l.NextSong()
		back, _ := l.PrevSong()
		if back.ID != start.ID {
			t.Fatalf("next then prev ended on %d, started on %d", back.ID, start.ID)
		}

		_, _ = l.NextSong()
		mid, _ := l.Current()
		_, _ = l.PrevSong()
		forth, _ := l.NextSong()
		if forth.ID != mid.ID {
			t.Fatalf("prev then next ended on %d, started on %d", forth.ID, mid.ID)
		}
	})
}

// TestPropertyRingFullCycle verifies size-many moves in either direction
// return a ring cursor to where it started.
func TestPropertyRingFullCycle(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(Ring)
		n := rapid.IntRange(1, 100).Draw(t, "n")
		for range n {
			l.AddSong(songGen().Draw(t, "song"))
		}
		for range rapid.IntRange(0, n).Draw(t, "advance") {
			_, _ = l.NextSong()
		}

		start, _ := l.Current()
		for range n {
			_, _ = l.NextSong()
		}
		if cur, _ := l.Current(); cur.ID != start.ID {
			t.Fatalf("%d nexts ended on %d, started on %d", n, cur.ID, start.ID)
		}
		for range n {
			_, _ = l.PrevSong()
		}
		if cur, _ := l.Current(); cur.ID != start.ID {
			t.Fatalf("%d prevs ended on %d, started on %d", n, cur.ID, start.ID)
		}
	})
}

// TestPropertyRingEnumerationTerminates verifies a ring enumeration always
// yields size nodes and exactly one trailing marker.
func TestPropertyRingEnumerationTerminates(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(Ring)
		n := rapid.IntRange(1, 300).Draw(t, "n")
		for range n {
			l.AddSong(songGen().Draw(t, "song"))
		}
		removals := rapid.IntRange(0, n-1).Draw(t, "removals")
		for range removals {
			_, _ = l.NextSong()
			_, _ = l.RemoveCurrent()
		}

		entries, err := l.All()
		if err != nil {
			t.Fatalf("enumeration failed: %v", err)
		}
		if len(entries) != l.Len()+1 {
			t.Fatalf("got %d entries for %d nodes", len(entries), l.Len())
		}
		for i, e := range entries[:l.Len()] {
			if e.IsMarker() {
				t.Fatalf("marker at position %d", i)
			}
		}
		head, _ := l.Head()
		last := entries[len(entries)-1]
		if !last.IsMarker() || last.WrapsTo != head.Title {
			t.Fatalf("last entry %+v is not a marker to %q", last, head.Title)
		}
	})
}

// TestPropertyRemovalShrinksByOne verifies removal on a non-empty list drops
// exactly one node and leaves the cursor reachable.
func TestPropertyRemovalShrinksByOne(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		l := New(topologyGen().Draw(t, "topology"))
		n := rapid.IntRange(1, 60).Draw(t, "n")
		for range n {
			l.AddSong(songGen().Draw(t, "song"))
		}
		for range rapid.IntRange(0, n).Draw(t, "advance") {
			_, _ = l.NextSong()
		}

		cur, ok := l.RemoveCurrent()
		if l.Len() != n-1 {
			t.Fatalf("size %d after removing from %d", l.Len(), n)
		}
		if ok != (n > 1) {
			t.Fatalf("RemoveCurrent reported %t with %d left", ok, l.Len())
		}
		if ok {
			found, err := l.SetCurrent(cur.ID)
			if err != nil || !found {
				t.Fatalf("new current %d is not reachable from head: %v", cur.ID, err)
			}
		}
		if err := l.Verify(); err != nil {
			t.Fatalf("invariant broken: %v", err)
		}
	})
}
