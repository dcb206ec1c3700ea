package cli

import (
	"github.com/spf13/cobra"

	"scraper/internal/config"
	"scraper/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"validate-dataset"},
	Short:   "Check the dataset for duplicates, missing and stray files",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, config.KeyDatasetRoot, "dataset-root"); err != nil {
			return err
		}

		cfg, logger, err := setup("validate")
		if err != nil {
			return err
		}

		gambling, nonGambling, err := loadSiteLists(cfg)
		if err != nil {
			return err
		}

		layout := dataset.Layout{Root: cfg.DatasetRoot}
		return dataset.Validate(layout, gambling, nonGambling, logger)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("dataset-root", "datasets", "Dataset root directory")
}
