package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/hostfixtures/internal/fancy"
	"github.com/atlanticdynamic/hostfixtures/internal/fixtures"
	"github.com/urfave/cli/v3"
)

func routesCmd() *cli.Command {
	return &cli.Command{
		Name:      "routes",
		Usage:     "Show the route table of a fixture",
		ArgsUsage: "<fixture>",
		Action:    routesAction,
	}
}

func routesAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	if name == "" {
		return cli.Exit("fixture name required (one of "+strings.Join(fixtures.Names(), ", ")+")", 1)
	}

	fixture, err := fixtures.Lookup(name)
	if err != nil {
		return cli.Exit(err, 1)
	}

	out, err := renderFixture(fixture)
	if err != nil {
		return cli.Exit(err, 1)
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

// renderFixture draws the fixture's defaults, CORS headers and routes.
func renderFixture(f *fixtures.Fixture) (string, error) {
	cfg := f.NewConfig()
	table, err := f.Table(cfg, nil)
	if err != nil {
		return "", err
	}
	hdrs, err := f.Policy.Headers()
	if err != nil {
		return "", err
	}

	ft := fancy.FixtureTree(f.Name)
	ft.AddChild(fancy.InfoStyle.Render(f.Description))
	ft.AddChild(fancy.HeaderStyle.Render("Listen") + " " + cfg.Address())

	cors := fancy.BranchNode("CORS", fancy.PolicyText(string(f.Policy)))
	names := make([]string, 0, len(hdrs))
	for name := range hdrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cors.Child(name + ": " + strings.Join(hdrs.Values(name), ", "))
	}
	ft.AddChild(cors)

	routes := table.Routes()
	branch := fancy.BranchNode("Routes", "("+strconv.Itoa(len(routes))+")")
	for _, r := range routes {
		branch.Child(fancy.RouteText(r.Method, r.Path) + " " + fancy.AppText(r.App.String()))
	}
	if table.Preflight() {
		branch.Child(fancy.RouteText("OPTIONS", "*") + " " + fancy.InfoStyle.Render("preflight 204"))
	}
	ft.AddChild(branch)

	return ft.String(), nil
}
