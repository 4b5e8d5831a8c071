package main

import (
	"errors"
	"reflect"
	"testing"
)

// TestDecide tests the per-action rules against representative state mappings
func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		states   PlayerStates
		expected PlayerActions
	}{
		{
			name:     "play with no players",
			action:   "play",
			states:   PlayerStates{},
			expected: PlayerActions{},
		},
		{
			name:     "play prefers paused over stopped",
			action:   "play",
			states:   PlayerStates{"A": Stopped, "B": Paused},
			expected: PlayerActions{"B": "Play"},
		},
		{
			name:     "play falls back to stopped",
			action:   "play",
			states:   PlayerStates{"A": Stopped},
			expected: PlayerActions{"A": "Play"},
		},
		{
			name:     "play is a no-op while something plays",
			action:   "play",
			states:   PlayerStates{"A": Playing, "B": Paused, "C": Stopped},
			expected: PlayerActions{},
		},
		{
			name:     "pause hits every playing player",
			action:   "pause",
			states:   PlayerStates{"A": Playing, "B": Playing, "C": Paused},
			expected: PlayerActions{"A": "Pause", "B": "Pause"},
		},
		{
			name:     "pause with nothing playing",
			action:   "pause",
			states:   PlayerStates{"A": Paused, "B": Stopped},
			expected: PlayerActions{},
		},
		{
			name:     "playpause pauses when playing",
			action:   "playpause",
			states:   PlayerStates{"A": Playing, "B": Playing},
			expected: PlayerActions{"A": "Pause", "B": "Pause"},
		},
		{
			name:     "playpause starts a paused player otherwise",
			action:   "playpause",
			states:   PlayerStates{"A": Stopped, "B": Paused},
			expected: PlayerActions{"B": "Play"},
		},
		{
			name:     "playpause with no players",
			action:   "playpause",
			states:   PlayerStates{},
			expected: PlayerActions{},
		},
		{
			name:     "stop quiets playing and paused players",
			action:   "stop",
			states:   PlayerStates{"A": Playing, "B": Paused, "C": Stopped},
			expected: PlayerActions{"A": "Stop", "B": "Stop"},
		},
		{
			name:     "stop with everything stopped",
			action:   "stop",
			states:   PlayerStates{"A": Stopped, "B": Stopped},
			expected: PlayerActions{},
		},
		{
			name:     "next targets one playing player",
			action:   "next",
			states:   PlayerStates{"A": Playing, "B": Paused},
			expected: PlayerActions{"A": "Next"},
		},
		{
			name:     "next with no players",
			action:   "next",
			states:   PlayerStates{},
			expected: PlayerActions{},
		},
		{
			name:     "next with nothing playing",
			action:   "next",
			states:   PlayerStates{"A": Paused, "B": Stopped},
			expected: PlayerActions{},
		},
		{
			name:     "prev maps to the Previous method",
			action:   "prev",
			states:   PlayerStates{"A": Playing},
			expected: PlayerActions{"A": "Previous"},
		},
		{
			name:     "prev with no players",
			action:   "prev",
			states:   PlayerStates{},
			expected: PlayerActions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decide(tt.action, tt.states)
			assertNoError(t, err)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("decide(%q, %v) = %v; want %v", tt.action, tt.states, result, tt.expected)
			}
		})
	}
}

// TestDecideUnknownAction tests that anything outside the known action
// names is rejected as a usage error, for any states input
func TestDecideUnknownAction(t *testing.T) {
	actions := []string{"", "Play", "PLAY", "toggle", "garbage", "play "}
	stateSets := []PlayerStates{
		{},
		{"A": Playing},
		{"A": Stopped, "B": Paused},
	}

	for _, action := range actions {
		for _, states := range stateSets {
			result, err := decide(action, states)
			assertError(t, err, "unknown action "+action)
			if !errors.Is(err, errUnknownAction) {
				t.Errorf("decide(%q) error = %v; want errUnknownAction", action, err)
			}
			if result != nil {
				t.Errorf("decide(%q) = %v; want nil on error", action, result)
			}
		}
	}
}

// TestDecidePlayPauseEquivalence tests that playpause behaves like pause
// when something plays and like play otherwise
func TestDecidePlayPauseEquivalence(t *testing.T) {
	stateSets := []PlayerStates{
		{},
		{"A": Playing},
		{"A": Playing, "B": Playing},
		{"A": Paused},
		{"A": Stopped, "B": Paused},
		{"A": Stopped, "B": Stopped},
		{"A": Playing, "B": Paused, "C": Stopped},
	}

	for _, states := range stateSets {
		got, err := decide("playpause", states)
		assertNoError(t, err)

		var want PlayerActions
		if len(findPlayers(states, Playing)) > 0 {
			want, err = decide("pause", states)
		} else {
			want, err = decide("play", states)
		}
		assertNoError(t, err)

		if !reflect.DeepEqual(got, want) {
			t.Errorf("playpause on %v = %v; want %v", states, got, want)
		}
	}
}

// TestDecideStopIdempotent tests that applying stop's result leaves a
// state mapping on which a second stop decides nothing
func TestDecideStopIdempotent(t *testing.T) {
	states := PlayerStates{"A": Playing, "B": Paused, "C": Stopped}

	actions, err := decide("stop", states)
	assertNoError(t, err)

	after := PlayerStates{}
	for player, state := range states {
		if actions[player] == "Stop" {
			state = Stopped
		}
		after[player] = state
	}

	second, err := decide("stop", after)
	assertNoError(t, err)
	assertEqual(t, len(second), 0, "second stop decision")
}

// TestDecideDeterministic tests that picks among several candidates are
// stable: equal inputs always give equal outputs
func TestDecideDeterministic(t *testing.T) {
	states := PlayerStates{"C": Playing, "A": Playing, "B": Playing}

	first, err := decide("next", states)
	assertNoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := decide("next", states)
		assertNoError(t, err)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("decide is not deterministic: %v vs %v", first, again)
		}
	}

	// The stable pick is the lexicographically smallest candidate
	assertEqual(t, first["A"], "Next", "picked player method")
	assertEqual(t, len(first), 1, "number of targets")
}

// TestFindPlayers tests the state filtering helper
func TestFindPlayers(t *testing.T) {
	states := PlayerStates{"C": Playing, "A": Paused, "B": Playing, "D": Stopped}

	tests := []struct {
		name     string
		want     []PlaybackState
		expected []string
	}{
		{"playing only", []PlaybackState{Playing}, []string{"B", "C"}},
		{"playing and paused", []PlaybackState{Playing, Paused}, []string{"A", "B", "C"}},
		{"stopped only", []PlaybackState{Stopped}, []string{"D"}},
		{"no matches", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := findPlayers(states, tt.want...)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("findPlayers(%v) = %v; want %v", tt.want, result, tt.expected)
			}
		})
	}
}

// TestPlaybackStateString tests the display names of the states
func TestPlaybackStateString(t *testing.T) {
	assertEqual(t, Playing.String(), "Playing", "Playing")
	assertEqual(t, Paused.String(), "Paused", "Paused")
	assertEqual(t, Stopped.String(), "Stopped", "Stopped")
	assertEqual(t, PlaybackState(42).String(), "Unknown", "out of range")
}
