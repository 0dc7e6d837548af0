package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/railroad-bartender/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play would use, as YAML, after the search
path and --difficulty have been applied. Redirect it to a file to start a
custom configuration:

  bartender config > ~/.arcade/configs/bartender.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
