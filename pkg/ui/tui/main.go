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


// Package tui is the terminal interface of the playlist.
package tui

import (
	"context"
	"fmt"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/config"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BuildMain creates the application with the playlist page as its root.
// The theme is taken from cfg and saved back to it when cycled.
func BuildMain(cfg *config.Instance, player *playlists.Player) (*tview.Application, *PlaylistPage) {
	if !SetCurrentTheme(cfg.Theme()) {
		log.Warn().Str("theme", cfg.Theme()).Msg("unknown theme, using default")
		SetCurrentTheme(ThemeDefault.Name)
	}

	app := tview.NewApplication()
	pages := tview.NewPages()
	page := NewPlaylistPage(app, pages, player, func(name string) {
		cfg.SetTheme(name)
		if err := cfg.Save(); err != nil {
			log.Error().Err(err).Msg("failed to save theme")
		}
	})
	app.SetRoot(pages, true).EnableMouse(true)
	return app, page
}

// Listen redraws the page for each notification until ctx is done or ns is
// closed.
func (pp *PlaylistPage) Listen(ctx context.Context, ns <-chan playlists.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ns:
			if !ok {
				return
			}
			log.Debug().Str("method", n.Method).Int("size", n.Stats.Size).Msg("playlist notification")
			pp.app.QueueUpdateDraw(pp.Refresh)
		}
	}
}

// Run shows the playlist until the user quits or ctx is cancelled.
func Run(
	ctx context.Context,
	cfg *config.Instance,
	player *playlists.Player,
	ns <-chan playlists.Notification,
) error {
	app, page := BuildMain(cfg, player)
	return runApp(ctx, app, page, ns)
}

func runApp(
	ctx context.Context,
	app *tview.Application,
	page *PlaylistPage,
	ns <-chan playlists.Notification,
) error {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page.Listen(gctx, ns)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		// queued so a cancel that lands before Run starts still stops it
		app.QueueUpdate(app.Stop)
		return nil
	})

	runErr := app.Run()
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("failed to run tui: %w", runErr)
	}
	return nil
}
