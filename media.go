package main

// PlayerController is the bus-facing surface the pipeline talks to.
// The production implementation is busController; tests substitute a fake.
type PlayerController interface {
	// ListPlayers returns the bus names of the media players currently registered.
	ListPlayers() ([]string, error)
	// PlaybackStatus returns the raw PlaybackStatus property of one player.
	PlaybackStatus(player string) (string, error)
	// Metadata returns the current track of one player.
	Metadata(player string) (trackInfo, error)
	// Call invokes one player method (Play, Pause, Stop, Next, Previous).
	Call(player, method string) error
}

// trackInfo is the subset of player metadata shown by the status action.
type trackInfo struct {
	Title    string
	Artist   string
	Album    string
	Duration int64 // seconds
}
