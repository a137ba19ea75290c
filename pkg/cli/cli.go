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

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-playlist/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/config"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	Version *bool
	Type    *string
	Run     *string
	Plain   *bool
}

// SetupFlags defines all common CLI flags.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Type: flag.String(
			"type",
			"",
			"start with this list type: forward, bidirectional or ring",
		),
		Run: flag.String(
			"run",
			"",
			"run semicolon separated playlist commands and exit",
		),
		Plain: flag.Bool(
			"plain",
			false,
			"use a line based console instead of the text ui",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Zaparoo Playlist v%s\n", config.AppVersion)
		os.Exit(0)
	}

	if *f.Type != "" {
		if _, err := songlist.ParseTopology(*f.Type); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// Topology returns the list type from the -type flag, or from the config
// when the flag wasn't given.
func (f *Flags) Topology(cfg *config.Instance) songlist.Topology {
	if f.Type != nil && *f.Type != "" {
		if t, err := songlist.ParseTopology(*f.Type); err == nil {
			return t
		}
	}
	return cfg.Topology()
}

// Post actions all remaining common flags that require the environment to be
// set up. Logging is allowed.
func (f *Flags) Post(player *playlists.Player) {
	if isFlagPassed("run") {
		if *f.Run == "" {
			_, _ = fmt.Fprint(os.Stderr, "Error: run flag requires a value\n")
			os.Exit(1)
		}
		NewConsole(player, os.Stdout).RunScript(*f.Run)
		os.Exit(0)
	}
}

// Setup initializes the user config and logging. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	dirs helpers.Dirs,
	defaultConfig config.Values,
	writers []io.Writer,
) *config.Instance {
	// Ensure directories exist before logging initialization
	err := helpers.EnsureDirectories(dirs)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(dirs, writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), dirs.ConfigDir, defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	// Initialize error reporting (opt-in)
	if err := telemetry.Init(telemetry.Options{
		Enabled:          cfg.ErrorReporting(),
		DSN:              cfg.SentryDSN(),
		DeviceID:         cfg.DeviceID(),
		AppVersion:       config.AppVersion,
		Topology:         cfg.Topology().String(),
		CatalogPath:      cfg.CatalogPath(),
		TraversalCeiling: cfg.TraversalCeiling(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	return cfg
}

// NewPlayer builds a player from the config, seeded with the configured
// number of catalog songs.
func NewPlayer(
	fs afero.Fs,
	cfg *config.Instance,
	topology songlist.Topology,
	opts ...playlists.Option,
) *playlists.Player {
	opts = append([]playlists.Option{
		playlists.WithCatalog(catalog.LoadOrSamples(fs, cfg.CatalogPath())),
		playlists.WithTraversalCeiling(cfg.TraversalCeiling()),
	}, opts...)

	player := playlists.NewPlayer(topology, opts...)
	player.AddSamples(cfg.SeedSamples())
	log.Info().
		Str("topology", topology.String()).
		Int("songs", player.Stats().Size).
		Msg("playlist ready")
	return player
}
