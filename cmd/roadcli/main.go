package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/lintang-b-s/roadnet/pkg/command"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
)

var (
	maxRouteID = flag.Uint("maxrouteid", roadmap.DefaultMaxRouteID, "largest valid route id")
	verbose    = flag.Bool("v", false, "log the cause of every failed line")
)

// roadcli reads commands from stdin, one per line:
//
//	addRoad;A;B;length;year
//	repairRoad;A;B;year
//	newRoute;id;A;B
//	extendRoute;id;C
//	removeRoad;A;B
//	removeRoute;id
//	getRouteDescription;id
//	id;c1;length;year;c2;...;cN
func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	m := roadmap.NewMap(roadmap.WithMaxRouteID(uint32(*maxRouteID)))
	defer m.Close()

	stdout := bufio.NewWriter(os.Stdout)

	opts := []command.Option{}
	if *verbose {
		opts = append(opts, command.WithErrorHook(func(lineNumber int, line string, err error) {
			log.Printf("line %d %q: %v", lineNumber, line, err)
		}))
	}
	in := command.NewInterpreter(m, stdout, os.Stderr, opts...)

	runErr := in.Run(os.Stdin)
	if err := stdout.Flush(); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		log.Printf("read input: %v", runErr)
		os.Exit(1)
	}
}
