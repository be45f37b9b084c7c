// platformer is a single-level 2D platformer played in the terminal.
//
// Usage:
//
//	platformer play          - Play the level
//	platformer serve         - Start SSH server for remote play
//	platformer config        - Print the effective level configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Level config file (.yaml, .yml or .toml)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
//
// Every global flag can also be set through the environment, e.g.
// PLATFORMER_FPS=30 or PLATFORMER_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Jump across platforms in your terminal",
	Long: `TUI Platformer is a small side-view platformer drawn with terminal
characters. Reach the goal platform, collect coins on the way and try
not to fall off the world.

Available commands:
  play     - Play the level
  serve    - Start SSH server for remote play
  config   - Print the effective level configuration

Examples:
  platformer play
  platformer play --name ann --fps 30
  platformer serve --ssh :2222
  platformer config --format toml`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().Int("fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().String("config", "", "Path to a level config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	for _, name := range []string{"fps", "config", "log-level", "log-file"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// initViper makes every bound flag settable as PLATFORMER_<FLAG>.
func initViper() {
	viper.SetEnvPrefix("platformer")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the logger from --log-level and --log-file. Without a log
// file, logs go to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if path := viper.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
