package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scraper/internal/browser"
	"scraper/internal/config"
	"scraper/internal/dataset"
	"scraper/internal/scrape"
	"scraper/internal/urlkit"
)

var scrapeCmd = &cobra.Command{
	Use:     "scrape",
	Aliases: []string{"scraper-dataset"},
	Short:   "Capture mobile and desktop screenshots for every listed site",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd,
			config.KeyDatasetRoot, "dataset-root",
			config.KeyConcurrency, "concurrency",
			config.KeyHeadless, "headless",
		); err != nil {
			return err
		}

		cfg, logger, err := setup("scrape")
		if err != nil {
			return err
		}

		gambling, nonGambling, err := loadSiteLists(cfg)
		if err != nil {
			return err
		}

		session, err := browser.NewSession(logger, cfg.Headless, cfg.NavTimeout)
		if err != nil {
			return err
		}
		defer session.Close()

		probeClient := urlkit.NewProbeClient(cfg.ProbeTimeout)
		runner := &scrape.Runner{
			Log:     logger,
			Layout:  dataset.Layout{Root: cfg.DatasetRoot},
			Browser: session,
			Probe: func(url string) bool {
				return urlkit.IsAccessibleHTML(probeClient, url)
			},
			Concurrency: cfg.Concurrency,
			Progress:    scrape.NewProgress(cfg.Concurrency),
		}
		return runner.Run(cmd.Context(), scrape.Targets(gambling, nonGambling))
	},
}

// bindFlags binds key/flag pairs of the executing command into viper so
// a changed flag wins over file and environment values.
func bindFlags(cmd *cobra.Command, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := viper.BindPFlag(pairs[i], cmd.Flags().Lookup(pairs[i+1])); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().String("dataset-root", "datasets", "Dataset root directory")
	scrapeCmd.Flags().Int("concurrency", 4, "Concurrent site captures")
	scrapeCmd.Flags().Bool("headless", true, "Run the browser headless")
}
