package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration games will use, as YAML.

Config files are searched in order:
  1. --config <path>
  2. ~/.puyo/configs/puyo.yaml
  3. ./configs/puyo.yaml
  4. built-in defaults

--speed and --players overrides are applied on top.

Examples:
  puyo config
  puyo config --speed hard
  puyo config --default > ~/.puyo/configs/puyo.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the commented default file instead")
	configCmd.Flags().IntVar(&flagPlayers, "players", 0, "Boards in the solo game (1-2, 0 = config)")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultPuyoYAML())
		return
	}

	logger, closeLog := newLogger()
	defer closeLog()

	cfg, _ := loadGameConfig(logger, flagPlayers)
	data, err := config.MarshalPuyo(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(data))
}
