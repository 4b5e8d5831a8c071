package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPrefix     = "org.mpris.MediaPlayer2."
	mprisPath       = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	playerInterface = "org.mpris.MediaPlayer2.Player"
	propsGet        = "org.freedesktop.DBus.Properties.Get"
	listNames       = "org.freedesktop.DBus.ListNames"
)

// errProxy marks a failure to obtain a working proxy. main maps it to a
// stage-specific exit code, since without a proxy the stage cannot make
// progress for any player.
var errProxy = errors.New("cannot create bus proxy")

// busController implements PlayerController over a live session bus
// connection.
type busController struct {
	conn *dbus.Conn
}

func newBusController(conn *dbus.Conn) *busController {
	return &busController{conn: conn}
}

func (c *busController) busProxy() (dbus.BusObject, error) {
	if !c.conn.Connected() {
		return nil, fmt.Errorf("%w for the bus daemon", errProxy)
	}
	return c.conn.BusObject(), nil
}

func (c *busController) playerProxy(player string) (dbus.BusObject, error) {
	if !c.conn.Connected() {
		return nil, fmt.Errorf("%w for %s", errProxy, player)
	}
	return c.conn.Object(player, mprisPath), nil
}

// ListPlayers asks the bus daemon for all registered names and keeps
// the media player ones.
func (c *busController) ListPlayers() ([]string, error) {
	proxy, err := c.busProxy()
	if err != nil {
		return nil, err
	}

	var names []string
	if err := proxy.Call(listNames, 0).Store(&names); err != nil {
		return nil, fmt.Errorf("listing bus names: %w", err)
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			players = append(players, name)
		}
	}
	return players, nil
}

func (c *busController) PlaybackStatus(player string) (string, error) {
	proxy, err := c.playerProxy(player)
	if err != nil {
		return "", err
	}

	var status string
	if err := proxy.Call(propsGet, 0, playerInterface, "PlaybackStatus").Store(&status); err != nil {
		return "", fmt.Errorf("reading PlaybackStatus of %s: %w", player, err)
	}
	return status, nil
}

func (c *busController) Metadata(player string) (trackInfo, error) {
	proxy, err := c.playerProxy(player)
	if err != nil {
		return trackInfo{}, err
	}

	var raw map[string]dbus.Variant
	if err := proxy.Call(propsGet, 0, playerInterface, "Metadata").Store(&raw); err != nil {
		return trackInfo{}, fmt.Errorf("reading Metadata of %s: %w", player, err)
	}
	return parseMetadata(raw), nil
}

func (c *busController) Call(player, method string) error {
	proxy, err := c.playerProxy(player)
	if err != nil {
		return err
	}

	if call := proxy.Call(playerInterface+"."+method, 0); call.Err != nil {
		return fmt.Errorf("calling %s on %s: %w", method, player, call.Err)
	}
	return nil
}

// parsePlaybackStatus maps the wire strings onto the three known states.
func parsePlaybackStatus(status string) (PlaybackState, bool) {
	switch status {
	case "Playing":
		return Playing, true
	case "Paused":
		return Paused, true
	case "Stopped":
		return Stopped, true
	}
	return 0, false
}

// parseMetadata extracts the displayed fields from a player metadata
// map. Players disagree on exact value types (artist as string vs
// string list, length as signed vs unsigned), so every field is
// optional and decoded leniently.
func parseMetadata(raw map[string]dbus.Variant) trackInfo {
	var info trackInfo
	if v, ok := raw["xesam:title"]; ok {
		if s, ok := v.Value().(string); ok {
			info.Title = s
		}
	}
	if v, ok := raw["xesam:album"]; ok {
		if s, ok := v.Value().(string); ok {
			info.Album = s
		}
	}
	if v, ok := raw["xesam:artist"]; ok {
		switch artists := v.Value().(type) {
		case []string:
			info.Artist = strings.Join(artists, ", ")
		case string:
			info.Artist = artists
		}
	}
	if v, ok := raw["mpris:length"]; ok {
		// mpris:length is in microseconds
		switch length := v.Value().(type) {
		case int64:
			info.Duration = length / 1e6
		case uint64:
			info.Duration = int64(length / 1e6)
		case int32:
			info.Duration = int64(length) / 1e6
		}
	}
	return info
}

// collectStates queries PlaybackStatus for every player, isolating
// failures: a player that errors or reports an unrecognized state is
// logged and omitted while the rest are still collected. Only a proxy
// failure aborts, since then no player can be reached at all.
func collectStates(ctl PlayerController, players []string) (PlayerStates, error) {
	states := PlayerStates{}
	for _, player := range players {
		status, err := ctl.PlaybackStatus(player)
		if errors.Is(err, errProxy) {
			return nil, err
		}
		if err != nil {
			log.Printf("unable to determine state of %s: %v", player, err)
			continue
		}
		state, ok := parsePlaybackStatus(status)
		if !ok {
			log.Printf("unknown state %q of %s", status, player)
			continue
		}
		states[player] = state
	}
	return states, nil
}

// dispatch invokes each decided command, skipping empty entries and
// carrying on past individual call failures.
func dispatch(ctl PlayerController, actions PlayerActions) error {
	for player, method := range actions {
		if method == "" {
			continue
		}
		if err := ctl.Call(player, method); err != nil {
			if errors.Is(err, errProxy) {
				return err
			}
			log.Printf("%v", err)
		}
	}
	return nil
}
