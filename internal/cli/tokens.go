package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/themekit/brand"
	"github.com/opencode-ai/themekit/internal/tui/styles"
	"github.com/opencode-ai/themekit/tokens"
)

var (
	tokensBrand string
	tokensDark  bool
)

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensBrand, "brand", "b", "", "brand to resolve (default: configured brand)")
	tokensCmd.Flags().BoolVar(&tokensDark, "dark", false, "resolve the dark palette")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the resolved color tokens for a brand and mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFrom(cmd.Context())
		if err != nil {
			return err
		}

		name := cfg.Brand
		if tokensBrand != "" {
			name = tokensBrand
		}
		b, ok := brand.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown brand %q", name)
		}

		dark := cfg.DarkMode || tokensDark
		colors := b.ResolveColors(dark)

		mode := "light"
		if dark {
			mode = "dark"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s (%s)\n", name, mode)

		tty := term.IsTerminal(int(os.Stdout.Fd()))
		for _, row := range tokenRows(colors) {
			if tty {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s %s\n", styles.Swatch(row.color), row.name, row.color.Hex())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", row.name, row.color.Hex())
			}
		}
		return nil
	},
}

type tokenRow struct {
	name  string
	color tokens.Color
}

func tokenRows(c tokens.ColorTokens) []tokenRow {
	return []tokenRow{
		{"brand.main", c.Brand.Main},
		{"brand.light", c.Brand.Light},
		{"brand.dark", c.Brand.Dark},
		{"brand.contrast", c.Brand.Contrast},
		{"interaction.primary", c.Interaction.Primary},
		{"interaction.hover", c.Interaction.PrimaryHover},
		{"interaction.pressed", c.Interaction.PrimaryPressed},
		{"interaction.focus", c.Interaction.Focus},
		{"interaction.disabled", c.Interaction.Disabled},
		{"neutral.background", c.Neutral.Background},
		{"neutral.surface", c.Neutral.Surface},
		{"neutral.border", c.Neutral.Border},
		{"neutral.text_primary", c.Neutral.TextPrimary},
		{"neutral.text_secondary", c.Neutral.TextSecondary},
		{"neutral.text_muted", c.Neutral.TextMuted},
		{"messaging.success", c.Messaging.Success},
		{"messaging.warning", c.Messaging.Warning},
		{"messaging.error", c.Messaging.Error},
		{"messaging.info", c.Messaging.Info},
	}
}
