package cli

import (
	"github.com/spf13/cobra"

	"scraper/internal/config"
	"scraper/internal/dataset"
)

var generateTxtCmd = &cobra.Command{
	Use:   "generate-txt",
	Short: "Export both site lists as txt files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, config.KeyTxtDir, "output-dir"); err != nil {
			return err
		}

		cfg, logger, err := setup("txt")
		if err != nil {
			return err
		}

		gambling, nonGambling, err := loadSiteLists(cfg)
		if err != nil {
			return err
		}

		return dataset.WriteSiteLists(cfg.TxtDir, gambling, nonGambling, logger)
	},
}

func init() {
	rootCmd.AddCommand(generateTxtCmd)

	generateTxtCmd.Flags().String("output-dir", ".", "Directory to write the txt files into")
}
