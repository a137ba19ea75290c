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
	"time"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/helpers/syncutil"
	"github.com/rivo/tview"
)

// TestAppRunner runs a tview application on a simulation screen.
type TestAppRunner struct {
	runErr  error
	app     *tview.Application
	screen  *TestScreen
	done    chan struct{}
	stopMu  syncutil.Mutex
	width   int
	height  int
	stopped bool
}

func NewTestAppRunner(t *testing.T, width, height int) *TestAppRunner {
	t.Helper()
	screen := NewTestScreen(t, width, height)
	app := tview.NewApplication()
	app.SetScreen(screen.SimulationScreen)
	return &TestAppRunner{
		app:    app,
		screen: screen,
		done:   make(chan struct{}),
		width:  width,
		height: height,
	}
}

// Start runs the app in a goroutine with the given root. Run initializes the
// simulation screen again, which resets it to 80x25, so the requested size
// is applied from the event loop once Run is up.
func (r *TestAppRunner) Start(root tview.Primitive) {
	r.app.SetRoot(root, true)
	go func() {
		defer close(r.done)
		r.runErr = r.app.Run()
	}()
	r.app.QueueUpdateDraw(func() {
		r.screen.SetSize(r.width, r.height)
	})
	time.Sleep(20 * time.Millisecond)
}

// WaitForSize polls until the screen has the size the runner was created
// with.
func (r *TestAppRunner) WaitForSize(timeout time.Duration) bool {
	return r.WaitForCondition(func() bool {
		w, h := r.screen.Size()
		return w == r.width && h == r.height
	}, timeout)
}

// Stop stops the app and waits for Run to return. tview finalizes the
// screen itself.
func (r *TestAppRunner) Stop() {
	r.stopMu.Lock()
	already := r.stopped
	r.stopped = true
	r.stopMu.Unlock()

	if already {
		return
	}
	r.app.Stop()
	select {
	case <-r.done:
	case <-time.After(time.Second):
	}
}

func (r *TestAppRunner) Screen() *TestScreen {
	return r.screen
}

func (r *TestAppRunner) App() *tview.Application {
	return r.app
}

// RunError waits for Run to return and reports its error.
func (r *TestAppRunner) RunError() error {
	<-r.done
	return r.runErr
}

func (*TestAppRunner) WaitForCondition(condition func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForText polls the screen until text appears or timeout passes.
func (r *TestAppRunner) WaitForText(text string, timeout time.Duration) bool {
	return r.WaitForCondition(func() bool {
		return r.screen.ContainsText(text)
	}, timeout)
}
