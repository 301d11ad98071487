// Package cities implements the registry listing command.
package cities

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
)

// Command returns the cities command.
func Command(flags common.FlagSource) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the city registry",
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Slug", "Name", "Tier", "Population", "Territory", "Hub Path"})

			for _, city := range engine.Registry.Cities() {
				t.AppendRow(table.Row{
					city.Slug,
					city.Name,
					city.Tier,
					city.Population,
					city.TerritoryName(),
					city.HubPath(),
				})
			}

			t.Render()

			return nil
		},
	}
}
