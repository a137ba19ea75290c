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

// handle is an index into the arena. Links between nodes are handles, never
// pointers, so a removed node cannot be kept alive by a stale back-link.
type handle int32

const nilHandle handle = -1

type slot struct {
	song Song
	id   NodeID
	next handle
	prev handle
	live bool
}

// arena owns the storage of every node in a list. Released slots are
// recycled, node IDs are not.
type arena struct {
	slots  []slot
	free   []handle
	lastID NodeID
}

func (a *arena) alloc(song Song) handle {
	a.lastID++
	s := slot{
		song: song,
		id:   a.lastID,
		next: nilHandle,
		prev: nilHandle,
		live: true,
	}

	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = s
		return h
	}

	a.slots = append(a.slots, s)
	return handle(len(a.slots) - 1)
}

func (a *arena) release(h handle) {
	s := &a.slots[h]
	*s = slot{next: nilHandle, prev: nilHandle}
	a.free = append(a.free, h)
}

func (a *arena) at(h handle) *slot {
	return &a.slots[h]
}

// valid reports whether h refers to a live slot.
func (a *arena) valid(h handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.slots[h].live
}

// live counts allocated slots.
func (a *arena) live() int {
	return len(a.slots) - len(a.free)
}

// reset drops every slot. IDs keep increasing so snapshots taken before the
// reset never compare equal to nodes added after it.
func (a *arena) reset() {
	a.slots = nil
	a.free = nil
}
