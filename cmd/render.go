package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/rook-computer/postermaker/internal/download"
	"github.com/rook-computer/postermaker/internal/theme"
	"github.com/spf13/cobra"
)

var (
	renderInput posterInput
	out         string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render a poster to a PNG file",
	Long:  `render a poster to a PNG file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		cfg, _, logger, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		req, err := renderInput.request(cmd)
		if err != nil {
			return err
		}
		img := renderInput.composer(cmd, cfg, logger).Compose(req)
		b, err := download.EncodePNG(img)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dx%d, %s)\n", color.GreenString("wrote"), out, img.Bounds().Dx(), img.Bounds().Dy(), theme.Resolve(req.Theme).Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderInput.register(renderCmd)
	renderCmd.Flags().StringVarP(&out, "out", "o", download.DefaultFilename, "output file")
}
