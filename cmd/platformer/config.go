package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective level configuration",
	Long: `Print the configuration the game would play with, after the search
order (--config, ~/.platformer/configs, ./configs, built-in default) and
validation. The output is a complete config file and can be edited and
passed back with --config.

Examples:
  platformer config > my-level.yaml
  platformer config --format toml > my-level.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().String("format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(out)
}
