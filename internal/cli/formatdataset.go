package cli

import (
	"github.com/spf13/cobra"

	"scraper/internal/config"
	"scraper/internal/dataset"
)

var keepSubdomains bool

var formatDatasetCmd = &cobra.Command{
	Use:   "format-dataset",
	Short: "Normalize screenshot filenames in both class directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, config.KeyDatasetRoot, "dataset-root"); err != nil {
			return err
		}

		cfg, logger, err := setup("format")
		if err != nil {
			return err
		}

		layout := dataset.Layout{Root: cfg.DatasetRoot}
		logger.Info("starting dataset filename formatting")

		for _, class := range []dataset.Class{dataset.ClassGambling, dataset.ClassNonGambling} {
			if _, _, err := dataset.BatchRename(layout.ClassDir(class), keepSubdomains, logger); err != nil {
				return err
			}
		}

		logger.Info("dataset filename formatting completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatDatasetCmd)

	formatDatasetCmd.Flags().String("dataset-root", "datasets", "Dataset root directory")
	formatDatasetCmd.Flags().BoolVar(&keepSubdomains, "keep-subdomains", true,
		"Keep leading subdomains instead of reducing to the registrable domain")
}
