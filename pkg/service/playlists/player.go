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

// Package playlists hosts a songlist behind a lock and adds the user facing
// behaviour around it: input validation, sample songs, topology switching
// and change notifications.
package playlists

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ZaparooProject/zaparoo-playlist/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/helpers/syncutil"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/validation"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrEmpty is returned by actions that need at least one song.
	ErrEmpty = errors.New("playlist is empty")
	// ErrBackwardUnsupported is returned by Prev on a forward playlist.
	ErrBackwardUnsupported = errors.New("forward playlist cannot go backward")
)

// SongParams is user input for a new song. Values are trimmed before use.
type SongParams struct {
	Title    string `validate:"notblank,max=200"`
	Artist   string `validate:"notblank,max=200"`
	Duration string `validate:"notblank,max=32"`
}

// Move describes the cursor before and after a navigation action.
type Move struct {
	From  songlist.Node
	To    songlist.Node
	Moved bool
}

// NowPlaying is the song handed to playback.
type NowPlaying struct {
	StartedAt time.Time
	Node      songlist.Node
	Topology  songlist.Topology
}

// Snapshot is a consistent view of the playlist for rendering.
type Snapshot struct {
	Entries    []songlist.Entry
	Stats      songlist.Stats
	Topology   songlist.Topology
	Operations int
}

type Option func(*Player)

// WithClock sets the clock used for NowPlaying timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Player) {
		p.clock = clock
	}
}

// WithCatalog sets the catalog used by AddRandom and AddSamples.
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Player) {
		p.catalog = c
	}
}

// WithRand sets the random source used by AddRandom.
func WithRand(r *rand.Rand) Option {
	return func(p *Player) {
		p.rng = r
	}
}

// WithTraversalCeiling bounds every walk over the list, including lists
// rebuilt by SwitchTopology.
func WithTraversalCeiling(steps int) Option {
	return func(p *Player) {
		p.ceiling = steps
	}
}

// WithNotifications sends a Notification after every change. Sends never
// block; notifications are dropped while the channel is full.
func WithNotifications(ns chan<- Notification) Option {
	return func(p *Player) {
		p.ns = ns
	}
}

// Player owns a songlist and serialises every operation on it.
type Player struct {
	clock      clockwork.Clock
	catalog    *catalog.Catalog
	rng        *rand.Rand
	list       *songlist.List
	ns         chan<- Notification
	ceiling    int
	operations int
	mu         syncutil.RWMutex
}

func NewPlayer(topology songlist.Topology, opts ...Option) *Player {
	p := &Player{
		clock:   clockwork.NewRealClock(),
		ceiling: songlist.DefaultTraversalCeiling,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.catalog == nil {
		p.catalog = catalog.Samples()
	}
	p.list = p.newList(topology)
	return p
}

func (p *Player) newList(topology songlist.Topology) *songlist.List {
	return songlist.New(topology, songlist.WithTraversalCeiling(p.ceiling))
}

// AddSong validates params and appends the song at the tail.
func (p *Player) AddSong(params SongParams) (songlist.Node, error) {
	params = SongParams{
		Title:    strings.TrimSpace(params.Title),
		Artist:   strings.TrimSpace(params.Artist),
		Duration: strings.TrimSpace(params.Duration),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	if err := validation.Validate(&params); err != nil {
		return songlist.Node{}, fmt.Errorf("invalid song: %w", err)
	}

	node := p.list.Add(params.Title, params.Artist, params.Duration)
	log.Debug().Str("title", node.Title).Uint64("id", uint64(node.ID)).Msg("added song")
	p.changed(NotificationAdded)
	return node, nil
}

// AddRandom appends a random catalog song.
func (p *Player) AddRandom() songlist.Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	node := p.list.AddSong(p.catalog.Random(p.rng))
	log.Debug().Str("title", node.Title).Msg("added random song")
	p.changed(NotificationAdded)
	return node
}

// AddSamples appends the first n catalog songs. It does not count as a user
// operation.
func (p *Player) AddSamples(n int) []songlist.Node {
	p.mu.Lock()
	defer p.mu.Unlock()

	songs := p.catalog.First(n)
	nodes := make([]songlist.Node, 0, len(songs))
	for _, s := range songs {
		nodes = append(nodes, p.list.AddSong(s))
	}
	if len(nodes) > 0 {
		p.changed(NotificationAdded)
	}
	return nodes
}

// Next moves the cursor forward.
func (p *Player) Next() (Move, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	from, ok := p.list.Current()
	if !ok {
		return Move{}, ErrEmpty
	}
	to, _ := p.list.NextSong()
	return p.moved(from, to), nil
}

// Prev moves the cursor backward. Forward playlists report
// ErrBackwardUnsupported and keep the cursor where it is.
func (p *Player) Prev() (Move, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	from, ok := p.list.Current()
	if !ok {
		return Move{}, ErrEmpty
	}
	if !p.list.Topology().CanGoBackward() {
		return Move{From: from, To: from}, ErrBackwardUnsupported
	}
	to, _ := p.list.PrevSong()
	return p.moved(from, to), nil
}

func (p *Player) moved(from, to songlist.Node) Move {
	m := Move{From: from, To: to, Moved: from.ID != to.ID}
	if m.Moved {
		log.Debug().Str("from", from.Title).Str("to", to.Title).Msg("moved cursor")
		p.changed(NotificationMoved)
	}
	return m
}

// PlayCurrent hands the current song to playback.
func (p *Player) PlayCurrent() (NowPlaying, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	node, ok := p.list.Current()
	if !ok {
		return NowPlaying{}, ErrEmpty
	}
	np := NowPlaying{
		Node:      node,
		Topology:  p.list.Topology(),
		StartedAt: p.clock.Now(),
	}
	log.Info().Str("title", node.Title).Str("artist", node.Artist).Msg("playing song")
	p.notify(NotificationPlayed)
	return np, nil
}

// RemoveCurrent deletes the current song and returns it along with the new
// current song, which is empty when the playlist became empty.
func (p *Player) RemoveCurrent() (removed, next songlist.Node, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	removed, ok := p.list.Current()
	if !ok {
		return songlist.Node{}, songlist.Node{}, ErrEmpty
	}
	next, _ = p.list.RemoveCurrent()
	log.Debug().Str("title", removed.Title).Msg("removed song")
	p.changed(NotificationRemoved)
	return removed, next, nil
}

// Clear removes every song.
func (p *Player) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	if p.list.Len() == 0 {
		return ErrEmpty
	}
	p.list.Clear()
	log.Debug().Msg("cleared playlist")
	p.changed(NotificationCleared)
	return nil
}

// SwitchTopology rebuilds the playlist with a new linkage discipline. Songs
// keep their order and the cursor returns to the first song whose title
// matches the previous current song.
func (p *Player) SwitchTopology(topology songlist.Topology) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operations++

	songs, err := p.list.Songs()
	if err != nil {
		return fmt.Errorf("failed to drain playlist: %w", err)
	}
	current, hadCurrent := p.list.Current()

	list := p.newList(topology)
	for _, n := range songs {
		list.AddSong(n.Song)
	}

	if hadCurrent {
		rebuilt, err := list.Songs()
		if err != nil {
			return fmt.Errorf("failed to enumerate rebuilt playlist: %w", err)
		}
		for _, n := range rebuilt {
			if n.Title == current.Title {
				if _, err := list.SetCurrent(n.ID); err != nil {
					return fmt.Errorf("failed to restore current song: %w", err)
				}
				break
			}
		}
	}

	log.Info().
		Str("from", p.list.Topology().String()).
		Str("to", topology.String()).
		Int("songs", len(songs)).
		Msg("switched playlist topology")
	p.list = list
	telemetry.SetTopology(topology.String())
	p.changed(NotificationTopology)
	return nil
}

// Snapshot returns the enumeration and statistics of the playlist. A
// traversal ceiling error is returned together with the partial entries.
func (p *Player) Snapshot() (Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := p.list.All()
	snap := Snapshot{
		Entries:    entries,
		Stats:      p.list.Stats(),
		Topology:   p.list.Topology(),
		Operations: p.operations,
	}
	if err != nil {
		log.Error().Err(err).Int("entries", len(entries)).Msg("playlist enumeration failed")
		return snap, fmt.Errorf("failed to enumerate playlist: %w", err)
	}
	return snap, nil
}

func (p *Player) Topology() songlist.Topology {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.list.Topology()
}

func (p *Player) Stats() songlist.Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.list.Stats()
}

// Operations counts user actions, successful or not, since the player was
// created.
func (p *Player) Operations() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.operations
}

// changed runs after every mutation. Must be called with the write lock held.
func (p *Player) changed(method string) {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		if err := p.list.Verify(); err != nil {
			log.Error().Err(err).Str("method", method).Msg("playlist invariant violated")
		}
	}
	p.notify(method)
}

func (p *Player) notify(method string) {
	if p.ns == nil {
		return
	}
	n := Notification{Method: method, Stats: p.list.Stats()}
	select {
	case p.ns <- n:
	default:
		log.Debug().Str("method", method).Msg("notification channel full, dropping")
	}
}
