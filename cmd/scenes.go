package cmd

import (
	"github.com/df07/go-tiled-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Scene", "Description"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, name := range scene.Names() {
		info, _ := scene.Lookup(name)
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	return nil
}
