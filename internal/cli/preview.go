package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Open the interactive design state preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFrom(cmd.Context())
		if err != nil {
			return err
		}

		eng, err := cfg.Build()
		if err != nil {
			return err
		}

		return tui.Run(eng)
	},
}
