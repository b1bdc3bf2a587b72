package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrstudio/internal/domain/service"
)

func newContrastCmd(qrService *service.QrService) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Print the WCAG contrast ratio of two #RRGGBB colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			advice, err := qrService.Contrast(args[0], args[1])
			if err != nil {
				return err
			}
			verdict := "ok"
			if advice.Low {
				verdict = "low contrast"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contrast ratio: %s (%s)\n", advice, verdict)
			return nil
		},
	}
}

func newScanCmd(qrService *service.QrService) *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE",
		Short: "Decode the QR code in an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := qrService.Scan(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
