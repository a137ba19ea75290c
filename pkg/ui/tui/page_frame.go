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
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PageFrame is a bordered page with a breadcrumb title, a content area, a
// one line status row and key hints drawn into the bottom border.
type PageFrame struct {
	content tview.Primitive
	*tview.Box
	status *tview.TextView
	hints  []string
}

func NewPageFrame() *PageFrame {
	pf := &PageFrame{
		Box: tview.NewBox(),
		status: tview.NewTextView().
			SetDynamicColors(true).
			SetTextAlign(tview.AlignCenter),
	}
	pf.SetBorder(true)
	return pf
}

// SetTitle sets a breadcrumb title, e.g. " Playlist > Ring ".
func (pf *PageFrame) SetTitle(path ...string) *PageFrame {
	pf.Box.SetTitle(" " + strings.Join(path, " > ") + " ")
	return pf
}

func (pf *PageFrame) SetContent(content tview.Primitive) *PageFrame {
	pf.content = content
	return pf
}

// SetStatus replaces the status row. Dynamic color tags are honored.
func (pf *PageFrame) SetStatus(text string) *PageFrame {
	pf.status.SetText(text)
	return pf
}

// Status returns the plain text of the status row.
func (pf *PageFrame) Status() string {
	return pf.status.GetText(true)
}

// SetHints sets the key hints shown in the bottom border, e.g. "n: Next".
func (pf *PageFrame) SetHints(hints ...string) *PageFrame {
	pf.hints = hints
	return pf
}

func (pf *PageFrame) hintRunes() []rune {
	var runes []rune
	for i, h := range pf.hints {
		if i > 0 {
			runes = append(runes, ' ', tcell.RuneVLine, ' ')
		}
		runes = append(runes, []rune(h)...)
	}
	return runes
}

// Draw implements tview.Primitive.
func (pf *PageFrame) Draw(screen tcell.Screen) {
	pf.DrawForSubclass(screen, pf)

	x, y, width, height := pf.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	contentHeight := max(height-1, 1)
	if pf.content != nil {
		pf.content.SetRect(x, y, width, contentHeight)
		pf.content.Draw(screen)
	}
	if height > 1 {
		pf.status.SetRect(x, y+contentHeight, width, 1)
		pf.status.Draw(screen)
	}

	pf.drawHints(screen)
}

func (pf *PageFrame) drawHints(screen tcell.Screen) {
	outerX, outerY, outerWidth, outerHeight := pf.GetRect()
	if outerWidth <= 4 || outerHeight <= 2 || len(pf.hints) == 0 {
		return
	}

	bottomY := outerY + outerHeight - 1
	hints := pf.hintRunes()
	if avail := outerWidth - 4; len(hints) > avail {
		hints = hints[:avail]
	}
	startX := outerX + (outerWidth-len(hints))/2

	t := CurrentTheme()
	style := tcell.StyleDefault.
		Foreground(t.BorderColor).
		Background(t.PrimitiveBackgroundColor)

	for i := startX - 1; i < startX+len(hints)+1; i++ {
		screen.SetContent(i, bottomY, ' ', nil, style)
	}
	for i, r := range hints {
		screen.SetContent(startX+i, bottomY, r, nil, style)
	}
}

// Focus implements tview.Primitive.
func (pf *PageFrame) Focus(delegate func(p tview.Primitive)) {
	if pf.content != nil {
		delegate(pf.content)
		return
	}
	pf.Box.Focus(delegate)
}

// HasFocus implements tview.Primitive.
func (pf *PageFrame) HasFocus() bool {
	if pf.content != nil && pf.content.HasFocus() {
		return true
	}
	return pf.Box.HasFocus()
}

// InputHandler runs the frame's input capture, then hands the event to the
// content.
func (pf *PageFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return pf.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if pf.content != nil && pf.content.HasFocus() {
			if handler := pf.content.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		}
	})
}

// MouseHandler implements tview.Primitive.
func (pf *PageFrame) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return pf.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if pf.content != nil {
			if handler := pf.content.MouseHandler(); handler != nil {
				return handler(action, event, setFocus)
			}
		}
		return false, nil
	})
}
