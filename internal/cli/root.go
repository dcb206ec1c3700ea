// Package cli wires the pipeline and tool tasks into one command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"scraper/internal/config"
	"scraper/internal/logging"
	"scraper/internal/sites"
	"scraper/internal/task"
)

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "Build and maintain the gambling-site screenshot dataset",
	Long: `Scraper captures mobile and desktop screenshots of gambling and
non-gambling websites into a labeled dataset, validates the result,
normalizes filenames and exports the site lists. It also fronts the
repository's developer tooling (ruff, git, commitizen) as named tasks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. External-tool exit codes pass through unchanged.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(task.ExitCode(err))
	}
}

// setup loads config and builds the named logger for one command run.
func setup(prefix string) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(prefix, cfg.LogLevel, cfg.LogFile), nil
}

// loadSiteLists resolves both site lists, honoring configured override
// files.
func loadSiteLists(cfg *config.Config) (gambling, nonGambling []string, err error) {
	gambling, err = sites.Resolve(sites.Gambling, cfg.GamblingFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load gambling site list: %w", err)
	}
	nonGambling, err = sites.Resolve(sites.NonGambling, cfg.NonGamblingFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load non-gambling site list: %w", err)
	}
	return gambling, nonGambling, nil
}
