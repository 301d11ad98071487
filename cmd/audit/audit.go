// Package audit implements the deployed-page audit command: it plans the
// catalog, fetches a sample of the highest-priority pages from the live
// site, and reports any drift between served canonical/robots values and
// fresh engine decisions.
package audit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
	"github.com/ezhulati/choose-my-power-sub003/internal/audit"
)

// defaultSampleSize bounds audit traffic against the live site.
const defaultSampleSize = 50

// Command returns the audit command.
func Command(flags common.FlagSource) *cobra.Command {
	var (
		baseURL string
		sample  int
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Verify deployed pages against engine decisions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			if baseURL == "" {
				baseURL = deps.Config.Site.BaseURL
			}

			_, pages, err := engine.Planner.Plan(cmd.Context())
			if err != nil {
				return fmt.Errorf("plan audit sample: %w", err)
			}

			auditor := audit.New(baseURL, engine.Registry, engine.Resolver, engine.Market, deps.Logger)

			report, err := auditor.Audit(cmd.Context(), audit.SampleFromPlan(pages, sample))
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if encodeErr := encoder.Encode(report); encodeErr != nil {
				return fmt.Errorf("encode report: %w", encodeErr)
			}

			if !report.Clean() {
				return fmt.Errorf("audit found %d drifts and %d failures",
					len(report.Drifts), len(report.Failed))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "site origin to audit (default from config)")
	cmd.Flags().IntVar(&sample, "sample", defaultSampleSize, "number of planned pages to check")

	return cmd
}
