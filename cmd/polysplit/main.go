package main

import (
	"fmt"
	"os"

	"github.com/omniscale/polysplit"
	"github.com/omniscale/polysplit/config"
	"github.com/omniscale/polysplit/log"
	"github.com/omniscale/polysplit/process"
	"github.com/omniscale/polysplit/stats"
)

func PrintCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Available commands:")
	fmt.Fprintln(os.Stderr, "\tsplit")
	fmt.Fprintln(os.Stderr, "\tversion")
}

func Main(usage func()) {
	if len(os.Args) <= 1 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "split":
		opts := config.ParseSplit(os.Args[2:])
		log.SetMinLevel(opts.LogLevel())
		if opts.Httpprofile != "" {
			stats.StartHttpPProf(opts.Httpprofile)
		}
		if err := process.Execute(opts); err != nil {
			log.Fatal("[fatal] ", err)
		}
	case "version":
		fmt.Println(polysplit.Version)
	default:
		usage()
		log.Fatalf("[fatal] invalid command: '%s'", os.Args[1])
	}
	os.Exit(0)
}

func main() {
	Main(PrintCmds)
}
