// Package resolve implements the path-resolution command: it runs one or
// more catalog paths through validation and canonical resolution and prints
// the outcome as a table.
package resolve

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// Command returns the resolve command.
func Command(flags common.FlagSource) *cobra.Command {
	var seasonFlag string

	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve catalog paths to their canonical decisions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			season, err := parseSeason(seasonFlag)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Path", "Canonical", "Reason", "Index", "Priority", "Robots"})

			for _, path := range args {
				row, rowErr := resolveOne(cmd, engine, path, season)
				if rowErr != nil {
					t.AppendRow(table.Row{path, "-", "error: " + rowErr.Error(), "-", "-", "-"})

					continue
				}

				t.AppendRow(row)
			}

			t.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&seasonFlag, "season", "",
		"seasonal context: summer, winter, or current (default none, matching build artifacts)")

	return cmd
}

// parseSeason maps the --season flag onto a resolution season. The default is
// no season so output agrees with build and sitemap artifacts.
func parseSeason(value string) (canonical.Season, error) {
	switch value {
	case "":
		return canonical.SeasonNone, nil
	case "current":
		return canonical.SeasonFor(time.Now()), nil
	case string(canonical.SeasonSummer):
		return canonical.SeasonSummer, nil
	case string(canonical.SeasonWinter):
		return canonical.SeasonWinter, nil
	default:
		return canonical.SeasonNone, fmt.Errorf("unknown season %q", value)
	}
}

// resolveOne validates and resolves a single path into a table row.
func resolveOne(cmd *cobra.Command, engine *common.Engine, path string, season canonical.Season) (table.Row, error) {
	slug, segment, ok := facets.ParsePath(path)
	if !ok {
		return nil, fmt.Errorf("not a catalog path")
	}

	city, found := engine.Registry.City(slug)
	if !found {
		return nil, fmt.Errorf("unknown city %q", slug)
	}

	result := facets.Validate(city, segment)
	if !result.IsValid {
		return nil, invalidSegmentError(result)
	}

	decision, err := engine.Resolver.Resolve(cmd.Context(), city.Slug, result.Normalized, nil, season)
	if err != nil {
		return nil, err
	}

	return table.Row{
		path,
		decision.CanonicalPath,
		string(decision.Reason),
		decision.ShouldIndex,
		fmt.Sprintf("%.2f", decision.Priority),
		sitemap.RobotsMeta(decision),
	}, nil
}

// invalidSegmentError summarizes a failed validation, including suggestions
// when near-miss candidates exist.
func invalidSegmentError(result facets.Result) error {
	if len(result.Suggestions) == 0 {
		return fmt.Errorf("invalid filter segment")
	}

	parts := make([]string, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		if len(s.Candidates) > 0 {
			parts = append(parts, fmt.Sprintf("%s (did you mean %s?)", s.Input, strings.Join(s.Candidates, ", ")))
		} else {
			parts = append(parts, s.Input)
		}
	}

	return fmt.Errorf("unknown filters: %s", strings.Join(parts, "; "))
}
