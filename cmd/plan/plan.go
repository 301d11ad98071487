// Package plan implements the generation-planning command. It runs a full
// planning pass, writes the {path, tier, priority} artifact the static build
// tool consumes, and prints a per-tier summary table.
package plan

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/rebuild"
)

// Command returns the plan command.
func Command(flags common.FlagSource) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan static generation and write the path-list artifact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			start := time.Now()

			p, pages, err := engine.Planner.Plan(cmd.Context())
			if err != nil {
				return fmt.Errorf("plan: %w", err)
			}

			if outDir == "" {
				outDir = deps.Config.Sitemap.OutDir
			}

			if writeErr := rebuild.NewArtifacts(outDir).WritePlan(p, pages); writeErr != nil {
				return writeErr
			}

			renderSummary(p, time.Since(start))
			deps.Logger.Info("Plan artifact written", "dir", outDir, "pages", p.TotalPages)

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "artifact output directory (default from config)")

	return cmd
}

// renderSummary prints the per-tier breakdown and plan header as a table.
func renderSummary(p *planner.Plan, elapsed time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Tier", "Pages"})

	tiers := make([]int, 0, len(p.PerTierCounts))
	for tier := range p.PerTierCounts {
		tiers = append(tiers, tier)
	}

	sort.Ints(tiers)

	for _, tier := range tiers {
		t.AppendRow(table.Row{tier, p.PerTierCounts[tier]})
	}

	t.AppendFooter(table.Row{"Total", p.TotalPages})
	t.Render()

	fmt.Printf("run %s: estimated build %s, planned in %s",
		p.RunID, p.EstimatedDuration, elapsed.Round(time.Millisecond))

	if p.UseIncrementalRegeneration {
		fmt.Print(", incremental regeneration recommended")
	}

	if p.Partial {
		fmt.Print(" (partial: time budget reached)")
	}

	fmt.Println()
}
