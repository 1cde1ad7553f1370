package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/locale"
)

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeResolveCmd)
	localeCmd.AddCommand(localeListCmd)
}

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Inspect locale resolution",
}

var localeResolveCmd = &cobra.Command{
	Use:   "resolve <tag>",
	Short: "Resolve a locale tag against the configured supported set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFrom(cmd.Context())
		if err != nil {
			return err
		}

		requested, err := locale.Parse(args[0])
		if err != nil {
			return err
		}

		supported := make([]locale.Localize, 0, len(cfg.SupportedLocales))
		for _, entry := range cfg.SupportedLocales {
			tag, err := locale.Parse(entry.Tag)
			if err != nil {
				return err
			}
			supported = append(supported, locale.Localize{Tag: tag, DisplayName: entry.Name})
		}

		resolved, match := locale.ResolveDetailed(requested, supported)
		fmt.Fprintf(cmd.OutOrStdout(), "requested: %s\nresolved:  %s\nmatch:     %s\n",
			requested, resolved, match)
		return nil
	},
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured supported locales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFrom(cmd.Context())
		if err != nil {
			return err
		}

		for i, entry := range cfg.SupportedLocales {
			marker := " "
			if i == 0 {
				marker = "*" // default locale
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", marker, entry.Tag, entry.Name)
		}
		return nil
	},
}
