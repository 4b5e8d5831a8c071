package main

import "testing"

// assertError is a test helper that checks if an error occurred and fails the test if not
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error: %s, got nil", msg)
	}
}

// assertNoError is a test helper that fails the test if an error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// assertEqual is a generic test helper for comparing values
func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// fakeController implements PlayerController without a bus, from canned
// per-player responses. Dispatched calls are recorded as "player:method".
type fakeController struct {
	players   []string
	listErr   error
	statuses  map[string]string
	statusErr map[string]error
	tracks    map[string]trackInfo
	trackErr  map[string]error
	callErr   map[string]error
	calls     []string
}

func (f *fakeController) ListPlayers() ([]string, error) {
	return f.players, f.listErr
}

func (f *fakeController) PlaybackStatus(player string) (string, error) {
	if err := f.statusErr[player]; err != nil {
		return "", err
	}
	return f.statuses[player], nil
}

func (f *fakeController) Metadata(player string) (trackInfo, error) {
	if err := f.trackErr[player]; err != nil {
		return trackInfo{}, err
	}
	return f.tracks[player], nil
}

func (f *fakeController) Call(player, method string) error {
	f.calls = append(f.calls, player+":"+method)
	return f.callErr[player]
}
