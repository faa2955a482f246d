package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/hostfixtures/internal/fancy"
	"github.com/atlanticdynamic/hostfixtures/internal/fixtures"
	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List the available fixtures",
		Action: listAction,
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	t := fancy.Tree().Root(fancy.RootStyle.Render("Fixtures"))
	for _, f := range fixtures.All() {
		d := f.NewConfig()
		t.Child(fmt.Sprintf("%s %s %s",
			fancy.FixtureText(f.Name),
			fancy.InfoStyle.Render(d.Address()),
			fancy.TruncateString(f.Description, 72),
		))
	}
	_, err := fmt.Fprintln(cmd.Root().Writer, t.String())
	return err
}
