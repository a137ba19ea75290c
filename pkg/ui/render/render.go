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

// Package render formats playlist state as plain text for the console and
// the TUI.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
)

const (
	EmptyPlaylist = "Playlist is empty!\nAdd songs to visualize."
	NoSong        = "No song playing"
	// TitleWidth is how many characters of a title a chain node shows.
	TitleWidth = 15
)

// Messages shown after a command.
const (
	MsgEmpty          = "Empty: Playlist is empty!"
	MsgAlreadyEmpty   = "Empty: Playlist is already empty!"
	MsgNoSong         = "No Song: No song to play!"
	MsgCleared        = "Cleared: Playlist cleared!"
	MsgClearCancelled = "Clear cancelled."
	MsgBackward       = "Not Supported: Singly Linked List cannot go backward! " +
		"Switch to Doubly or Circular Linked List."
	ConfirmClear = "Are you sure you want to clear all songs?"
)

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width]) + "..."
}

// Link returns the arrow drawn between neighbouring nodes.
func Link(t songlist.Topology) string {
	if t.KeepsBackLinks() {
		return " <-> "
	}
	return " -> "
}

// Node formats one chain node with its 1-based position. The current node is
// marked with a play symbol.
func Node(pos int, n songlist.Node) string {
	marker := ""
	if n.IsCurrent {
		marker = "▶ "
	}
	return fmt.Sprintf("[#%d %s%s]", pos, marker, Truncate(n.Title, TitleWidth))
}

// Chain draws the enumeration of a playlist on a single line.
func Chain(entries []songlist.Entry, t songlist.Topology) string {
	if len(entries) == 0 {
		return EmptyPlaylist
	}

	var sb strings.Builder
	pos := 0
	for _, e := range entries {
		if e.IsMarker() {
			sb.WriteString(" ")
			sb.WriteString(e.String())
			continue
		}
		if pos > 0 {
			sb.WriteString(Link(t))
		}
		pos++
		sb.WriteString(Node(pos, e.Node))
	}
	return sb.String()
}

// Listing writes one song per line, current song first marked.
func Listing(entries []songlist.Entry) []string {
	lines := make([]string, 0, len(entries))
	pos := 0
	for _, e := range entries {
		if e.IsMarker() {
			lines = append(lines, "   "+e.String())
			continue
		}
		pos++
		prefix := "  "
		if e.Node.IsCurrent {
			prefix = "▶ "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s", prefix, pos, e.Node.String()))
	}
	return lines
}

// NowPlaying formats the current song line.
func NowPlaying(n songlist.Node, ok bool) string {
	if !ok {
		return NoSong
	}
	return "▶ NOW PLAYING: " + n.String()
}

// Playing formats the details shown when a song is played.
func Playing(np playlists.NowPlaying) []string {
	return []string{
		"Title: " + np.Node.Title,
		"Artist: " + np.Node.Artist,
		"Duration: " + np.Node.Duration,
		"Playlist Type: " + np.Topology.DisplayName(),
	}
}

// Stats formats the statistics panel.
func Stats(s songlist.Stats) []string {
	return []string{
		"Data Structure: " + s.Type,
		fmt.Sprintf("Total Songs: %d", s.Size),
		"Current Song: " + s.CurrentTitle,
		"First Song: " + s.HeadTitle,
		"Last Song: " + s.TailTitle,
	}
}

// Move describes a cursor move, or returns an empty string when the cursor
// stayed where it was.
func Move(m playlists.Move) string {
	if !m.Moved {
		return ""
	}
	return fmt.Sprintf("Moved from: %s -> To: %s", m.From.Title, m.To.Title)
}

// MoveResult describes the outcome of a next or prev command.
func MoveResult(m playlists.Move, err error) string {
	switch {
	case errors.Is(err, playlists.ErrEmpty):
		return MsgEmpty
	case errors.Is(err, playlists.ErrBackwardUnsupported):
		return MsgBackward
	case err != nil:
		return "Error: " + err.Error()
	case m.Moved:
		return Move(m)
	default:
		return "Still on: " + m.To.Title
	}
}

// Current returns the node flagged as current in a snapshot.
func Current(snap playlists.Snapshot) (songlist.Node, bool) {
	for _, e := range snap.Entries {
		if !e.IsMarker() && e.Node.IsCurrent {
			return e.Node, true
		}
	}
	return songlist.Node{}, false
}

// Activated describes a topology after switching to it.
func Activated(t songlist.Topology) []string {
	lines := []string{t.DisplayName() + " Activated"}
	for _, info := range playlists.TopologyInfo(t) {
		lines = append(lines, "• "+info)
	}
	return lines
}
