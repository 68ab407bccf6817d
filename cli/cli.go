package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v3"

	"waypointd/params"
	"waypointd/routegen"
	ms "waypointd/settings"
	"waypointd/track"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Watch and control an active waypointd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate a route CSV from an open street maps pbf file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "input-file",
						Usage:    "The open street maps pbf file to extract the route from",
						Aliases: []string{
							"i",
						},
						Value: "./map.osm.pbf",
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Usage:    "The route CSV file to write",
						Aliases: []string{
							"o",
						},
						Value: "./route.csv",
					},
					&cli.StringFlag{
						Category: "Route",
						Name:     "way",
						Usage:    "The name or ref of the ways to stitch into the route",
						Aliases: []string{
							"w",
						},
					},
					&cli.Float64Flag{
						Category: "Route",
						Name:     "default-speed",
						Usage:    "Base speed in m/s for ways without a maxspeed tag",
						Value:    8.3,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					waypoints, err := routegen.Generate(ctx, routegen.Options{
						InputFile:    cmd.String("input-file"),
						WayName:      cmd.String("way"),
						DefaultSpeed: cmd.Float64("default-speed"),
					})
					if err != nil {
						return err
					}
					if err := routegen.WriteRoute(cmd.String("output-file"), waypoints); err != nil {
						return err
					}
					fmt.Printf("wrote %d waypoints to %s\n", len(waypoints), cmd.String("output-file"))
					return nil
				},
			},
			{
				Name:  "route",
				Usage: "Manage stored routes",
				Commands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Import a route CSV into the route store",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "file",
								Usage:    "The route CSV file to import",
								Aliases:  []string{"f"},
								Required: true,
							},
							&cli.StringFlag{
								Name:     "name",
								Usage:    "The name to store the route under",
								Aliases:  []string{"n"},
								Required: true,
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return importRoute(cmd.String("file"), cmd.String("name"))
						},
					},
					{
						Name:  "list",
						Usage: "List the routes in the route store",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return listRoutes()
						},
					},
					{
						Name:  "select",
						Usage: "Pick the route waypointd loads on startup",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return selectRoute()
						},
					},
				},
			},
		},
		Name:  "Waypointd",
		Usage: "Start an instance of waypointd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}

func importRoute(file string, name string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	waypoints, err := track.ParseCSV(f)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(name, waypoints); err != nil {
		return err
	}
	fmt.Printf("imported %d waypoints as %q\n", len(waypoints), name)
	return nil
}

func listRoutes() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func selectRoute() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no routes stored, import one first")
		return nil
	}

	prompt := promptui.Select{
		Label: "Select Route",
		Items: names,
	}
	_, result, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return nil
	}

	params.EnsureParamDirectories()
	if err := params.PutParam(params.ACTIVE_ROUTE, []byte(result)); err != nil {
		return err
	}
	fmt.Printf("active route set to %q\n", result)
	return nil
}

func openStore() (*track.Store, error) {
	ms.Settings.LoadWithRetries(3)
	return track.OpenStore(ms.Settings.RouteDB)
}
