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


package tui

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

//nolint:paralleltest // draws with the global theme
func TestPageFrameDraw(t *testing.T) {
	screen := NewTestScreen(t, 60, 10)
	defer screen.Fini()

	content := tview.NewTextView().SetText("body text")
	pf := NewPageFrame().
		SetTitle("Playlist", "Ring").
		SetContent(content).
		SetStatus("[red]all good[-]").
		SetHints("n: Next", "q: Quit")
	pf.SetRect(0, 0, 60, 10)
	pf.Draw(screen)
	screen.Show()

	assert.True(t, screen.ContainsText(" Playlist > Ring "))
	assert.True(t, screen.ContainsText("body text"))
	assert.True(t, screen.ContainsText("all good"))
	assert.True(t, screen.ContainsText("n: Next │ q: Quit"))
	assert.Equal(t, "all good", pf.Status())
}

//nolint:paralleltest // draws with the global theme
func TestPageFrameTruncatesHints(t *testing.T) {
	screen := NewTestScreen(t, 12, 5)
	defer screen.Fini()

	pf := NewPageFrame().SetHints("a very long hint that cannot fit")
	pf.SetRect(0, 0, 12, 5)
	pf.Draw(screen)
	screen.Show()

	assert.True(t, screen.ContainsText("a very l"))
	assert.False(t, screen.ContainsText("cannot"))
}

func TestPageFrameFocusDelegatesToContent(t *testing.T) {
	t.Parallel()

	content := tview.NewTextView()
	pf := NewPageFrame().SetContent(content)

	var got tview.Primitive
	pf.Focus(func(p tview.Primitive) { got = p })
	assert.Same(t, content, got)
}
