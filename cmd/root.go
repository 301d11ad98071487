// Package cmd implements the command-line interface for the faceted SEO
// routing engine. It provides the root command and subcommands for planning,
// sitemap emission, path resolution, auditing, and serving the HTTP API.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	auditcmd "github.com/ezhulati/choose-my-power-sub003/cmd/audit"
	"github.com/ezhulati/choose-my-power-sub003/cmd/cities"
	"github.com/ezhulati/choose-my-power-sub003/cmd/plan"
	"github.com/ezhulati/choose-my-power-sub003/cmd/resolve"
	"github.com/ezhulati/choose-my-power-sub003/cmd/serve"
	sitemapcmd "github.com/ezhulati/choose-my-power-sub003/cmd/sitemap"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	// rootCmd represents the root command for the seogen CLI.
	rootCmd = &cobra.Command{
		Use:   "seogen",
		Short: "Faceted SEO routing and generation governance",
		Long: `seogen governs the faceted catalog of an electricity-plan comparison
site: it validates filter combinations, resolves canonical URLs, plans
static generation within crawl and build budgets, and emits the sitemaps
and robots directives that follow from those decisions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment overrides are visible to viper.
	_ = godotenv.Load()

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("seogen version %s\n", version)
		},
	})

	flags := func() (string, bool) { return cfgFile, debug }

	rootCmd.AddCommand(plan.Command(flags))
	rootCmd.AddCommand(sitemapcmd.Command(flags))
	rootCmd.AddCommand(resolve.Command(flags))
	rootCmd.AddCommand(cities.Command(flags))
	rootCmd.AddCommand(auditcmd.Command(flags))
	rootCmd.AddCommand(serve.Command(flags))
}
