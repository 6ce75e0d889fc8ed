package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rook-computer/postermaker/internal/theme"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "list built-in themes",
	Long:  `list built-in themes with their gradient endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range theme.All() {
			name := t.Name
			if name == theme.Default {
				name += color.HiBlackString(" (default)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s -> %s\n", name, t.BackgroundTop.Hex(), t.BackgroundBottom.Hex())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
