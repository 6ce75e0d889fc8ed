package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/rook-computer/postermaker/internal/render"
	"github.com/spf13/cobra"
)

var (
	previewInput posterInput
	fbDevice     string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "show a poster on a Linux framebuffer",
	Long:  `show a poster on a Linux framebuffer device, letterboxed to the screen size.`,
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

		req, err := previewInput.request(cmd)
		if err != nil {
			return err
		}
		img := previewInput.composer(cmd, cfg, logger).Compose(req)
		if err := render.ShowOnFramebuffer(fbDevice, img); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("shown on"), fbDevice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewInput.register(previewCmd)
	previewCmd.Flags().StringVarP(&fbDevice, "fb", "", "/dev/fb0", "framebuffer device")
}
