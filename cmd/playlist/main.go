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


package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/zaparoo-playlist/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/cli"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/config"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/ui/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// notificationBuffer is how many playlist changes may queue up before the
// TUI falls behind and drops them.
const notificationBuffer = 32

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre()

	cfg := cli.Setup(helpers.DefaultDirs(), config.BaseDefaults, nil)
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			telemetry.Flush()
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	topology := flags.Topology(cfg)
	fs := afero.NewOsFs()

	if *flags.Plain {
		player := cli.NewPlayer(fs, cfg, topology)
		flags.Post(player)

		log.Info().Msg("started plain console")
		if err := cli.NewConsole(player, os.Stdout).Serve(ctx, os.Stdin); err != nil {
			log.Error().Err(err).Msg("console stopped")
			return fmt.Errorf("error running console: %w", err)
		}
		return nil
	}

	ns := make(chan playlists.Notification, notificationBuffer)
	player := cli.NewPlayer(fs, cfg, topology, playlists.WithNotifications(ns))
	flags.Post(player)

	if err := tui.Run(ctx, cfg, player, ns); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return fmt.Errorf("error running UI: %w", err)
	}
	return nil
}
