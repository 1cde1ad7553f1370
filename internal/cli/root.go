// Package cli provides the themekit command-line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/config"
	"github.com/opencode-ai/themekit/logging"
)

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to themekit.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Inspect and preview themekit design state",
	Long:  "themekit inspects brands, resolves locales, and previews the reactive design state engine.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logging.Setup(level, zerolog.ConsoleWriter{Out: os.Stderr})

		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
