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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/zaparoo-playlist/pkg/service/playlists"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/songlist"
	"github.com/ZaparooProject/zaparoo-playlist/pkg/ui/render"
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

const (
	prompt = "> "
	// suggestSimilarity is the lowest Jaro-Winkler score offered as a
	// "did you mean" suggestion.
	suggestSimilarity = 0.75
)

var commandNames = []string{
	"add", "random", "next", "prev", "play", "remove", "clear",
	"type", "list", "chain", "stats", "help", "quit",
}

var helpLines = []string{
	"Commands:",
	"  add <title>|<artist>|<duration>  add a song at the end",
	"  random                           add a random sample song",
	"  next, prev                       move to the next or previous song",
	"  play                             play the current song",
	"  remove                           remove the current song",
	"  clear                            remove every song",
	"  type [forward|bidirectional|ring] switch list type",
	"  list                             show every song",
	"  chain                            draw the links between songs",
	"  stats                            show list statistics",
	"  help                             show this help",
	"  quit                             leave the console",
}

// Console runs text commands against a player and prints the results.
type Console struct {
	player  *playlists.Player
	out     io.Writer
	confirm func(question string) bool
}

func NewConsole(player *playlists.Player, out io.Writer) *Console {
	return &Console{
		player: player,
		out:    out,
	}
}

// SetConfirm sets the function asked before destructive commands. Without
// one every confirmation is accepted.
func (c *Console) SetConfirm(fn func(question string) bool) {
	c.confirm = fn
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) lines(lines []string) {
	for _, l := range lines {
		c.printf("%s", l)
	}
}

func (c *Console) confirmed(question string) bool {
	if c.confirm == nil {
		return true
	}
	return c.confirm(question)
}

// RunScript executes semicolon separated commands in order. It stops early
// on quit.
func (c *Console) RunScript(script string) {
	for _, line := range strings.Split(script, ";") {
		if c.Exec(line) {
			return
		}
	}
}

// Serve reads commands from in until it is exhausted, ctx is cancelled or
// quit is entered.
func (c *Console) Serve(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	prev := c.confirm
	c.confirm = func(question string) bool {
		_, _ = fmt.Fprint(c.out, question+" (y/N) ")
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
	defer func() { c.confirm = prev }()

	c.printf("Type help for a list of commands.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		_, _ = fmt.Fprint(c.out, prompt)
		if !scanner.Scan() {
			break
		}
		if c.Exec(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// Exec runs a single command line and reports whether the console should
// quit. Errors are printed, never returned.
func (c *Console) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	log.Debug().Str("cmd", cmd).Str("args", args).Msg("console command")

	switch strings.ToLower(cmd) {
	case "add":
		c.add(args)
	case "random":
		n := c.player.AddRandom()
		c.printf("Added: %s", n.String())
	case "next":
		m, err := c.player.Next()
		c.move(m, err)
	case "prev", "previous":
		m, err := c.player.Prev()
		c.move(m, err)
	case "play":
		c.play()
	case "remove":
		c.remove()
	case "clear":
		c.clear()
	case "type":
		c.switchType(args)
	case "list":
		c.list()
	case "chain":
		c.chain()
	case "stats":
		c.lines(render.Stats(c.player.Stats()))
	case "help", "?":
		c.lines(helpLines)
	case "quit", "exit", "q":
		return true
	default:
		if s := suggest(strings.ToLower(cmd), commandNames); s != "" {
			c.printf("Unknown command: %s (did you mean %s?)", cmd, s)
			return false
		}
		c.printf("Unknown command: %s (type help for a list of commands)", cmd)
	}
	return false
}

func (c *Console) add(args string) {
	parts := strings.Split(args, "|")
	if len(parts) != 3 {
		c.printf("Input Error: usage is add <title>|<artist>|<duration>")
		return
	}
	n, err := c.player.AddSong(playlists.SongParams{
		Title:    parts[0],
		Artist:   parts[1],
		Duration: parts[2],
	})
	if err != nil {
		c.printf("Input Error: Please fill all fields! (%v)", err)
		return
	}
	c.printf("Added: %s", n.String())
}

func (c *Console) move(m playlists.Move, err error) {
	c.printf("%s", render.MoveResult(m, err))
}

func (c *Console) play() {
	np, err := c.player.PlayCurrent()
	if errors.Is(err, playlists.ErrEmpty) {
		c.printf("%s", render.MsgNoSong)
		return
	} else if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Now Playing:")
	c.lines(render.Playing(np))
}

func (c *Console) remove() {
	removed, _, err := c.player.RemoveCurrent()
	if errors.Is(err, playlists.ErrEmpty) {
		c.printf("%s", render.MsgAlreadyEmpty)
		return
	} else if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Song Removed: %s", removed.Title)
}

func (c *Console) clear() {
	if c.player.Stats().Size == 0 {
		c.printf("%s", render.MsgAlreadyEmpty)
		return
	}
	if !c.confirmed(render.ConfirmClear) {
		c.printf("%s", render.MsgClearCancelled)
		return
	}
	if err := c.player.Clear(); err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("%s", render.MsgCleared)
}

func (c *Console) switchType(args string) {
	target := c.player.Topology().Next()
	if args != "" {
		t, err := songlist.ParseTopology(args)
		if err != nil {
			names := make([]string, 0, 3)
			for _, known := range songlist.Topologies() {
				names = append(names, known.String())
			}
			if s := suggest(strings.ToLower(args), names); s != "" {
				c.printf("Error: %v (did you mean %s?)", err, s)
				return
			}
			c.printf("Error: %v", err)
			return
		}
		target = t
	}
	if err := c.player.SwitchTopology(target); err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.lines(render.Activated(target))
}

func (c *Console) list() {
	snap, err := c.player.Snapshot()
	if err != nil {
		c.printf("Error: %v", err)
	}
	if len(snap.Entries) == 0 {
		c.printf("%s", render.EmptyPlaylist)
		return
	}
	c.lines(render.Listing(snap.Entries))
}

func (c *Console) chain() {
	snap, err := c.player.Snapshot()
	if err != nil {
		c.printf("Error: %v", err)
	}
	c.printf("%s", render.Chain(snap.Entries, snap.Topology))
	c.printf("%s", render.NowPlaying(render.Current(snap)))
	c.printf("Operations: %d", snap.Operations)
}

// suggest returns the candidate most similar to input, or an empty string
// when nothing is close enough.
func suggest(input string, candidates []string) string {
	best := ""
	var bestScore float32
	for _, candidate := range candidates {
		score := edlib.JaroWinklerSimilarity(input, candidate)
		if score >= suggestSimilarity && score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best
}
