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

// Package telemetry reports errors from the playlist to Sentry when the user
// has opted in. Error level log events are the reports, such as a list walk
// hitting its traversal ceiling. Paths in reports have the user name removed.
package telemetry

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/helpers"
	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const flushTimeout = 2 * time.Second

// Catalog kinds attached to reports in place of the catalog path.
const (
	CatalogSamples = "samples"
	CatalogCSV     = "csv"
	CatalogYAML    = "yaml"
)

// ErrNoDSN is returned when reporting is enabled without an endpoint.
var ErrNoDSN = errors.New("error reporting enabled but no sentry_dsn configured")

var (
	enabled      bool
	sentryWriter *sentryzerolog.Writer
	closeOnce    sync.Once
)

type pathRule struct {
	re   *regexp.Regexp
	repl string
}

// userPaths replaces the user directory component of home paths.
var userPaths = []pathRule{
	{regexp.MustCompile(`(?i)/home/[^/]+/`), "/home/<user>/"},
	{regexp.MustCompile(`(?i)/Users/[^/]+/`), "/Users/<user>/"},
	{regexp.MustCompile(`(?i)[a-zA-Z]:\\Users\\[^\\]+\\`), "C:\\Users\\<user>\\"},
}

// Options configures error reporting.
type Options struct {
	DSN              string
	DeviceID         string
	AppVersion       string
	Topology         string
	CatalogPath      string
	TraversalCeiling int
	Enabled          bool
}

// Init starts Sentry and tees error level log events to it. It does nothing
// unless reporting is enabled.
//
//nolint:gocritic // options are passed by value
func Init(opts Options) error {
	if !opts.Enabled {
		log.Debug().Msg("error reporting disabled")
		return nil
	}
	if opts.DSN == "" {
		return ErrNoDSN
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Release:          "zaparoo-playlist@" + opts.AppVersion,
		AttachStacktrace: true,
		SendDefaultPII:   false,
		ServerName:       "",
		MaxBreadcrumbs:   0,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return sanitizeEvent(event)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: opts.DeviceID})
		scope.SetTags(map[string]string{
			"os":       runtime.GOOS,
			"arch":     runtime.GOARCH,
			"topology": opts.Topology,
			"catalog":  catalogKind(opts.CatalogPath),
		})
		scope.SetContext("playlist", playlistContext(opts))
	})

	sentryWriter, err = sentryzerolog.NewWithHub(sentry.CurrentHub(), sentryzerolog.Options{
		Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout:    flushTimeout,
		WithBreadcrumbs: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create sentry zerolog writer: %w", err)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(
		helpers.LogWriter(),
		sentryWriter,
	)).With().Timestamp().Caller().Logger()

	enabled = true
	log.Info().
		Str("topology", opts.Topology).
		Msg("error reporting enabled")
	return nil
}

// SetTopology updates the topology tag after the user switches list type.
func SetTopology(topology string) {
	if !enabled {
		return
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("topology", topology)
	})
}

// Close flushes pending reports and stops the Sentry writer. Calling it more
// than once is safe.
func Close() {
	if !enabled {
		return
	}
	closeOnce.Do(func() {
		_ = sentryWriter.Close()
		sentry.Flush(flushTimeout)
	})
}

// Flush sends pending reports. Call it before exiting on a fatal error.
func Flush() {
	if !enabled {
		return
	}
	sentry.Flush(flushTimeout)
}

// Enabled reports whether Init started Sentry.
func Enabled() bool {
	return enabled
}

//nolint:gocritic // options are passed by value
func playlistContext(opts Options) sentry.Context {
	return sentry.Context{
		"topology":          opts.Topology,
		"catalog":           catalogKind(opts.CatalogPath),
		"traversal_ceiling": opts.TraversalCeiling,
	}
}

// catalogKind names the kind of catalog in use without leaking its path.
func catalogKind(path string) string {
	if path == "" {
		return CatalogSamples
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return CatalogYAML
	default:
		return CatalogCSV
	}
}

// sanitizeEvent strips user paths and the host name from an event. Catalog
// load errors carry the catalog path in the exception value.
func sanitizeEvent(event *sentry.Event) *sentry.Event {
	event.ServerName = ""
	event.Message = sanitizePath(event.Message)

	for i := range event.Exception {
		exc := &event.Exception[i]
		exc.Value = sanitizePath(exc.Value)
		if exc.Stacktrace == nil {
			continue
		}
		for j := range exc.Stacktrace.Frames {
			frame := &exc.Stacktrace.Frames[j]
			frame.AbsPath = sanitizePath(frame.AbsPath)
			frame.Filename = sanitizePath(frame.Filename)
		}
	}

	for k, v := range event.Extra {
		if s, ok := v.(string); ok {
			event.Extra[k] = sanitizePath(s)
		}
	}

	return event
}

func sanitizePath(path string) string {
	for _, rule := range userPaths {
		path = rule.re.ReplaceAllString(path, rule.repl)
	}
	return path
}
