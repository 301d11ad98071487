// Package sitemap implements the sitemap emission command: one full
// generation pass writing plan, sitemap, and robots artifacts to disk.
package sitemap

import (
	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
	"github.com/ezhulati/choose-my-power-sub003/internal/rebuild"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// Command returns the sitemap command.
func Command(flags common.FlagSource) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Emit sitemap index, category sitemaps, and robots.txt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = deps.Config.Sitemap.OutDir
			}

			pipeline := rebuild.NewPipeline(
				engine.Registry,
				engine.Resolver,
				engine.Planner,
				engine.Market,
				sitemap.NewEmitter(deps.Config.Site.BaseURL, deps.Logger, nil),
				rebuild.NewArtifacts(outDir),
				deps.Config.Site.BaseURL,
				deps.Logger,
				nil,
			)

			plan, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			deps.Logger.Info("Sitemaps written",
				"dir", outDir, "pages", plan.TotalPages, "run_id", plan.RunID)

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default from config)")

	return cmd
}
