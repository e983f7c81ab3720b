package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"latencystats/logger"
)

var LatsumApp = cli.App{
	Name:      "latsum",
	HelpName:  "latsum",
	Usage:     "summarize latency samples and packet loss",
	Copyright: "(c) 2026 latencystats authors",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
	},
	Commands: []*cli.Command{
		&SummarizeCmd,
	},
}

func main() {
	if err := LatsumApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
