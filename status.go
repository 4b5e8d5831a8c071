package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// shortPlayerName strips the well-known service prefix for display.
func shortPlayerName(player string) string {
	return strings.TrimPrefix(player, mprisPrefix)
}

// collectTracks reads the current track of every player that is playing
// or paused. Failures are soft: the status line simply carries no track.
func collectTracks(ctl PlayerController, states PlayerStates) map[string]trackInfo {
	tracks := make(map[string]trackInfo)
	for _, player := range findPlayers(states, Playing, Paused) {
		track, err := ctl.Metadata(player)
		if err != nil {
			log.Printf("unable to read metadata of %s: %v", player, err)
			continue
		}
		tracks[player] = track
	}
	return tracks
}

// renderStatus formats one line per player: name, playback state and,
// when the player exposes one, the current track.
func renderStatus(states PlayerStates, tracks map[string]trackInfo, cfg Config) string {
	color := lipgloss.Color(cfg.UI.Color)
	nameStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	stateStyle := lipgloss.NewStyle().Foreground(color)

	players := make([]string, 0, len(states))
	for player := range states {
		players = append(players, player)
	}
	sort.Strings(players)

	var b strings.Builder
	for _, player := range players {
		b.WriteString(fmt.Sprintf("%s  %s",
			nameStyle.Render(shortPlayerName(player)),
			stateStyle.Render(states[player].String()),
		))
		if track, ok := tracks[player]; ok && track.Title != "" {
			line := track.Title
			if track.Artist != "" {
				line += " - " + track.Artist
			}
			if track.Album != "" {
				line += " (" + track.Album + ")"
			}
			b.WriteString("  " + truncateText(line, cfg.UI.MaxLength))
			if track.Duration > 0 {
				b.WriteString(" [" + formatTime(track.Duration) + "]")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
