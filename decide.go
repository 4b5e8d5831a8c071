package main

import (
	"errors"
	"fmt"
	"sort"
)

// PlaybackState is the playback state reported by a player.
type PlaybackState int

const (
	Stopped PlaybackState = iota
	Paused
	Playing
)

func (s PlaybackState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	}
	return "Unknown"
}

// PlayerStates maps a player's bus name to its observed playback state.
// Players whose state could not be determined have no entry.
type PlayerStates map[string]PlaybackState

// PlayerActions maps a player's bus name to the player method to invoke
// on it. Empty method values are no-ops and skipped by dispatch.
type PlayerActions map[string]string

// errUnknownAction marks a usage error: the requested action is not one
// the tool knows about.
var errUnknownAction = errors.New("unknown action")

// findPlayers returns the players whose state is one of want, sorted by
// bus name so that picks among ties are stable within a run.
func findPlayers(states PlayerStates, want ...PlaybackState) []string {
	var result []string
	for player, state := range states {
		for _, w := range want {
			if state == w {
				result = append(result, player)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// startCandidate picks the player that play/playpause should start: a
// Paused player if there is one, otherwise a Stopped one.
func startCandidate(states PlayerStates) (string, bool) {
	candidates := findPlayers(states, Paused)
	if len(candidates) == 0 {
		candidates = findPlayers(states, Stopped)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

// decide maps the requested action and the observed states onto the
// method to invoke per player. It is a pure function: no bus traffic
// happens here, and equal inputs always yield equal results.
//
// play starts a single player and only if nothing is playing yet;
// pause and stop quiet every matching player, so that several
// simultaneously active players all end up silent.
func decide(action string, states PlayerStates) (PlayerActions, error) {
	result := PlayerActions{}
	playing := findPlayers(states, Playing)

	switch action {
	case "play":
		if len(playing) == 0 {
			if player, ok := startCandidate(states); ok {
				result[player] = "Play"
			}
		}
	case "pause":
		for _, player := range playing {
			result[player] = "Pause"
		}
	case "playpause":
		if len(playing) == 0 {
			if player, ok := startCandidate(states); ok {
				result[player] = "Play"
			}
		} else {
			for _, player := range playing {
				result[player] = "Pause"
			}
		}
	case "stop":
		for _, player := range findPlayers(states, Playing, Paused) {
			result[player] = "Stop"
		}
	case "next":
		if len(playing) > 0 {
			result[playing[0]] = "Next"
		}
	case "prev":
		if len(playing) > 0 {
			result[playing[0]] = "Previous"
		}
	default:
		return nil, fmt.Errorf("%w %q", errUnknownAction, action)
	}

	return result, nil
}
