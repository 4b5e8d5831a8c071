package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	flag "github.com/spf13/pflag"
)

var version = "dev"

// Exit codes. 2, 3 and 4 distinguish which stage lost its bus proxy so
// a failing invocation can be diagnosed from the status alone.
const (
	exitOK             = 0
	exitNoBus          = 1
	exitDiscoveryProxy = 2
	exitStateProxy     = 3
	exitDispatchProxy  = 4
	exitUsage          = 127
)

var (
	versionFlag bool
	ignoreFlags []string
)

func init() {
	flag.BoolVar(&versionFlag, "version", false, "Print the version and exit")
	flag.StringSliceVarP(&ignoreFlags, "ignore-player", "i", nil, "Player instance to ignore (repeatable)")
}

func usage(w io.Writer, progname string) {
	fmt.Fprintf(w, "usage: %s <play|pause|playpause|stop|next|prev|status>\n", progname)
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	progname := filepath.Base(os.Args[0])

	if versionFlag {
		fmt.Println(progname, version)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		usage(os.Stderr, progname)
		os.Exit(exitUsage)
	}
	action := args[0]

	cfg := initConfig(ignoreFlags)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Printf("the user's session bus is not available: %v", err)
		os.Exit(exitNoBus)
	}
	defer conn.Close()

	ctl := newBusController(conn)

	players, err := ctl.ListPlayers()
	if err != nil {
		if errors.Is(err, errProxy) {
			log.Printf("%v", err)
			os.Exit(exitDiscoveryProxy)
		}
		// A failed listing is treated like an empty bus: nothing to control.
		log.Printf("%v", err)
	}

	players = filterIgnored(players, cfg.IgnorePlayers)
	if len(players) == 0 {
		fmt.Println("no player found.")
		return
	}

	states, err := collectStates(ctl, players)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(exitStateProxy)
	}

	if action == "status" {
		tracks := collectTracks(ctl, states)
		fmt.Print(renderStatus(states, tracks, cfg))
		return
	}

	actions, err := decide(action, states)
	if err != nil {
		log.Printf("%v", err)
		usage(os.Stderr, progname)
		os.Exit(exitUsage)
	}

	if err := dispatch(ctl, actions); err != nil {
		log.Printf("%v", err)
		os.Exit(exitDispatchProxy)
	}
}
