package cmd

import (
	"fmt"

	"github.com/k1LoW/errors"
	"github.com/rook-computer/postermaker/internal/download"
	"github.com/spf13/cobra"
)

var (
	linkInput    posterInput
	linkFilename string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "print an HTML download link with the poster embedded",
	Long:  `print an HTML download link with the poster embedded as a base64 PNG data URI.`,
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

		req, err := linkInput.request(cmd)
		if err != nil {
			return err
		}
		link, err := download.Link(linkInput.composer(cmd, cfg, logger).Compose(req), linkFilename)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkInput.register(linkCmd)
	linkCmd.Flags().StringVarP(&linkFilename, "filename", "", download.DefaultFilename, "download file name")
}
