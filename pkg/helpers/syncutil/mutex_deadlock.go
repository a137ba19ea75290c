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

//go:build deadlock

// Package syncutil holds the locks that guard the player, config and theme
// state. Under -tags=deadlock they come from go-deadlock and any potential
// deadlock is written to the playlist log instead of the terminal, which the
// TUI owns.
package syncutil

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = true

// lockTimeout is how long a lock may be waited on before it is reported.
// Player operations never hold a lock across I/O.
const lockTimeout = 10 * time.Second

var reports = &reportBuffer{}

func init() {
	deadlock.Opts.DeadlockTimeout = lockTimeout
	deadlock.Opts.LogBuf = reports
	deadlock.Opts.OnPotentialDeadlock = func() {
		report := reports.take()
		log.Error().Str("report", report).Msg("potential deadlock")
		_, _ = os.Stderr.WriteString(report)
		os.Exit(2)
	}
}

// reportBuffer collects a report across the many writes go-deadlock makes
// for one detection.
type reportBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex //nolint:forbidigo // cannot use the wrapped mutex here
}

func (r *reportBuffer) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *reportBuffer) take() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	report := strings.TrimSpace(r.buf.String())
	r.buf.Reset()
	return report
}

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	deadlock.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	deadlock.RWMutex
}
