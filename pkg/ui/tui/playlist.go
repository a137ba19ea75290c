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
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/config"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/ui/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	PagePlaylist     = "playlist"
	PageAddSong      = "add_song"
	PageConfirmClear = "confirm_clear"
)

// Placeholder values of the add song form.
const (
	defaultTitle    = "New Song"
	defaultArtist   = "Artist Name"
	defaultDuration = "3:30"
)

// statsHeight fits the five statistics lines, two of them wrapped, inside
// the border on an 80 column terminal.
const statsHeight = 9

var playlistHints = []string{
	"n/p: Move", "Space: Play", "a: Add", "r: Random", "d: Remove",
	"c: Clear", "t: Type", "m: Theme", "q: Quit",
}

// PlaylistPage shows the chain of songs and handles the playlist keys.
type PlaylistPage struct {
	player  *playlists.Player
	app     *tview.Application
	pages   *tview.Pages
	frame   *PageFrame
	chain   *tview.TextView
	listing *tview.TextView
	details *tview.TextView
	stats   *tview.TextView
	// onTheme is called with the new theme name after it is cycled.
	onTheme func(name string)
	playing string
}

// NewPlaylistPage builds the page and adds it to pages.
func NewPlaylistPage(
	app *tview.Application,
	pages *tview.Pages,
	player *playlists.Player,
	onTheme func(name string),
) *PlaylistPage {
	pp := &PlaylistPage{
		player:  player,
		app:     app,
		pages:   pages,
		onTheme: onTheme,
		frame:   NewPageFrame(),
		chain:   tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		listing: tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
		details: tview.NewTextView().SetDynamicColors(true),
		stats:   tview.NewTextView().SetDynamicColors(true),
	}

	pp.chain.SetBorder(true).SetTitle(" Chain ")
	pp.listing.SetBorder(true).SetTitle(" Songs ")
	pp.details.SetBorder(true).SetTitle(" Now Playing ")
	pp.stats.SetBorder(true).SetTitle(" Statistics ")

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(pp.details, 0, 1, false).
		AddItem(pp.stats, statsHeight, 0, false)
	body := tview.NewFlex().
		AddItem(pp.listing, 0, 3, true).
		AddItem(side, 0, 2, false)
	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(pp.chain, 5, 0, false).
		AddItem(body, 0, 1, true)

	pp.frame.SetContent(content).SetHints(playlistHints...)
	pp.frame.SetInputCapture(pp.handleKey)
	pp.applyColors()

	pp.Refresh()
	pages.AddAndSwitchToPage(PagePlaylist, pp.frame, true)
	return pp
}

// Frame returns the root primitive of the page.
func (pp *PlaylistPage) Frame() *PageFrame {
	return pp.frame
}

// applyColors paints the page with the current theme. tview only reads its
// global styles when a primitive is created.
func (pp *PlaylistPage) applyColors() {
	theme := CurrentTheme()
	pp.frame.SetBackgroundColor(theme.PrimitiveBackgroundColor)
	pp.frame.SetBorderColor(theme.BorderColor)
	pp.frame.SetTitleColor(theme.BorderColor)
	pp.frame.status.SetBackgroundColor(theme.PrimitiveBackgroundColor)
	pp.frame.status.SetTextColor(theme.PrimaryTextColor)
	for _, tv := range []*tview.TextView{pp.chain, pp.listing, pp.details, pp.stats} {
		tv.SetBackgroundColor(theme.PrimitiveBackgroundColor)
		tv.SetTextColor(theme.PrimaryTextColor)
		tv.SetBorderColor(theme.BorderColor)
		tv.SetTitleColor(theme.BorderColor)
	}
}

// Refresh redraws every panel from a fresh snapshot of the player. It must
// run on the UI goroutine.
func (pp *PlaylistPage) Refresh() {
	theme := CurrentTheme()
	snap, err := pp.player.Snapshot()
	if err != nil {
		pp.setStatus(theme.ErrorColorName, "Error: "+err.Error())
	}

	pp.frame.SetTitle("Zaparoo Playlist v"+config.AppVersion, snap.Topology.DisplayName())
	pp.chain.SetText(pp.chainText(snap, theme))
	pp.listing.SetText(pp.listingText(snap, theme))

	var sb strings.Builder
	sb.WriteString(colored(theme.CurrentColorName, tview.Escape(render.NowPlaying(render.Current(snap)))))
	if pp.playing != "" {
		sb.WriteString("\n\n")
		sb.WriteString(tview.Escape(pp.playing))
	}
	fmt.Fprintf(&sb, "\n\n%s", colored(theme.SecondaryColor, fmt.Sprintf("Operations: %d", snap.Operations)))
	pp.details.SetText(sb.String())

	pp.stats.SetText(tview.Escape(strings.Join(render.Stats(snap.Stats), "\n")))
}

func (*PlaylistPage) chainText(snap playlists.Snapshot, theme *Theme) string {
	if len(snap.Entries) == 0 {
		return colored(theme.SecondaryColor, render.EmptyPlaylist)
	}

	var sb strings.Builder
	pos := 0
	for _, e := range snap.Entries {
		if e.IsMarker() {
			sb.WriteString(" ")
			sb.WriteString(colored(theme.LinkColorName, tview.Escape(e.String())))
			continue
		}
		if pos > 0 {
			sb.WriteString(colored(theme.LinkColorName, render.Link(snap.Topology)))
		}
		pos++
		node := tview.Escape(render.Node(pos, e.Node))
		if e.Node.IsCurrent {
			node = colored(theme.CurrentColorName, node)
		}
		sb.WriteString(node)
	}
	return sb.String()
}

func (*PlaylistPage) listingText(snap playlists.Snapshot, theme *Theme) string {
	if len(snap.Entries) == 0 {
		return colored(theme.SecondaryColor, render.EmptyPlaylist)
	}

	lines := render.Listing(snap.Entries)
	for i, line := range lines {
		line = tview.Escape(line)
		if strings.HasPrefix(line, "▶") {
			line = colored(theme.CurrentColorName, line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (pp *PlaylistPage) setStatus(color, text string) {
	pp.frame.SetStatus(colored(color, tview.Escape(text)))
}

func (pp *PlaylistPage) info(text string) {
	pp.setStatus(CurrentTheme().AccentColorName, text)
}

func (pp *PlaylistPage) problem(text string) {
	pp.setStatus(CurrentTheme().ErrorColorName, text)
}

func (pp *PlaylistPage) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		pp.app.Stop()
		return nil
	}
	if event.Key() != tcell.KeyRune {
		return event
	}

	switch event.Rune() {
	case 'n':
		pp.move(pp.player.Next())
	case 'p':
		pp.move(pp.player.Prev())
	case ' ':
		pp.play()
	case 'a':
		pp.showAddForm()
		return nil
	case 'r':
		n := pp.player.AddRandom()
		pp.info("Added: " + n.String())
	case 'd':
		pp.remove()
	case 'c':
		pp.confirmClear()
		return nil
	case 't':
		pp.switchType()
	case 'm':
		pp.cycleTheme()
	case 'q':
		pp.app.Stop()
		return nil
	default:
		return event
	}

	pp.Refresh()
	return nil
}

func (pp *PlaylistPage) move(m playlists.Move, err error) {
	msg := render.MoveResult(m, err)
	if err != nil {
		pp.problem(msg)
		return
	}
	pp.info(msg)
}

func (pp *PlaylistPage) play() {
	np, err := pp.player.PlayCurrent()
	if errors.Is(err, playlists.ErrEmpty) {
		pp.problem(render.MsgNoSong)
		return
	} else if err != nil {
		pp.problem("Error: " + err.Error())
		return
	}
	pp.playing = strings.Join(render.Playing(np), "\n")
	pp.info("Now Playing: " + np.Node.Title)
}

func (pp *PlaylistPage) remove() {
	removed, _, err := pp.player.RemoveCurrent()
	if errors.Is(err, playlists.ErrEmpty) {
		pp.problem(render.MsgAlreadyEmpty)
		return
	} else if err != nil {
		pp.problem("Error: " + err.Error())
		return
	}
	pp.info("Song Removed: " + removed.Title)
}

func (pp *PlaylistPage) switchType() {
	target := pp.player.Topology().Next()
	if err := pp.player.SwitchTopology(target); err != nil {
		pp.problem("Error: " + err.Error())
		return
	}
	pp.info(strings.Join(render.Activated(target), "  "))
}

func (pp *PlaylistPage) cycleTheme() {
	name := NextThemeName(CurrentTheme().Name)
	SetCurrentTheme(name)
	pp.applyColors()
	if pp.onTheme != nil {
		pp.onTheme(name)
	}
	pp.info("Theme: " + AvailableThemes[name].DisplayName)
}

func (pp *PlaylistPage) closeDialog(name string) {
	pp.pages.RemovePage(name)
	pp.pages.SwitchToPage(PagePlaylist)
	pp.app.SetFocus(pp.frame)
	pp.Refresh()
}

func (pp *PlaylistPage) confirmClear() {
	if pp.player.Stats().Size == 0 {
		pp.problem(render.MsgAlreadyEmpty)
		return
	}

	modal := tview.NewModal().
		SetText(render.ConfirmClear).
		AddButtons([]string{"Clear", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			pp.finishClear(label == "Clear")
		})
	modal.SetTitle(" Clear Playlist ").SetBorder(true)
	pp.pages.AddPage(PageConfirmClear, modal, true, true)
	pp.app.SetFocus(modal)
}

func (pp *PlaylistPage) finishClear(confirmed bool) {
	defer pp.closeDialog(PageConfirmClear)
	if !confirmed {
		pp.info(render.MsgClearCancelled)
		return
	}
	if err := pp.player.Clear(); err != nil {
		pp.problem("Error: " + err.Error())
		return
	}
	pp.playing = ""
	pp.info(render.MsgCleared)
}

// addSong adds the song from the form and closes it, or keeps the form open
// and reports why the song was rejected.
func (pp *PlaylistPage) addSong(params playlists.SongParams) bool {
	n, err := pp.player.AddSong(params)
	if err != nil {
		log.Debug().Err(err).Msg("rejected song from add form")
		pp.problem(fmt.Sprintf("Input Error: Please fill all fields! (%v)", err))
		return false
	}
	pp.info("Added: " + n.String())
	pp.closeDialog(PageAddSong)
	return true
}

func (pp *PlaylistPage) showAddForm() {
	title := tview.NewInputField().SetLabel("Title").SetText(defaultTitle).SetFieldWidth(30)
	artist := tview.NewInputField().SetLabel("Artist").SetText(defaultArtist).SetFieldWidth(30)
	duration := tview.NewInputField().SetLabel("Duration").SetText(defaultDuration).SetFieldWidth(8)

	form := tview.NewForm().
		AddFormItem(title).
		AddFormItem(artist).
		AddFormItem(duration)
	form.SetFieldBackgroundColor(CurrentTheme().FieldFocusedBg)

	submit := func() {
		ok := pp.addSong(playlists.SongParams{
			Title:    title.GetText(),
			Artist:   artist.GetText(),
			Duration: duration.GetText(),
		})
		if !ok {
			pp.app.SetFocus(form)
		}
	}
	cancel := func() {
		pp.closeDialog(PageAddSong)
	}

	form.AddButton("Add", submit).
		AddButton("Cancel", cancel).
		SetCancelFunc(cancel)
	form.SetBorder(true).SetTitle(" Add Song ")

	pp.pages.AddPage(PageAddSong, CenterWidget(50, 11, form), true, true)
	pp.app.SetFocus(form)
}
