package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "hostfixtures",
		Version: Version,
		Usage:   "Minimal HTTP fixture servers for host/backend integration tests",
		Commands: []*cli.Command{
			serveCmd(),
			routesCmd(),
			listCmd(),
			validateCmd(),
			versionCmd,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
