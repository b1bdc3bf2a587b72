package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrstudio/internal/domain/dto"
	"github.com/Badsnus/qrstudio/internal/domain/service"
	"github.com/Badsnus/qrstudio/pkg/colorutil"
	"github.com/Badsnus/qrstudio/pkg/logger/types"
)

func newGenerateCmd(qrService *service.QrService, log *types.Logger) *cobra.Command {
	d := qrService.Defaults()

	cmd := &cobra.Command{
		Use:   "generate DATA",
		Short: "Render text or a URL as a QR code image (format by file extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			in := dto.QRInput{Data: args[0]}
			in.QRColor, _ = flags.GetString("qr-color")
			in.BackgroundColor, _ = flags.GetString("bg-color")
			in.LogoPath, _ = flags.GetString("logo")
			in.Output, _ = flags.GetString("out")
			in.RecoveryLevel, _ = flags.GetString("level")
			in.Verify, _ = flags.GetBool("verify")

			if flags.Changed("transparency") {
				v, _ := flags.GetFloat64("transparency")
				in.Transparency = &v
			}
			for name, field := range map[string]**int{
				"border":         &in.BorderSize,
				"module-size":    &in.ModuleSize,
				"border-modules": &in.BorderModules,
			} {
				if flags.Changed(name) {
					v, _ := flags.GetInt(name)
					*field = &v
				}
			}

			var confirm service.ConfirmFunc
			if yes, _ := flags.GetBool("yes"); !yes {
				confirm = prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			res, err := qrService.Generate(in, confirm)
			if err != nil {
				return err
			}

			log.Debugw("Generated", "path", res.Path, "version", res.Version, "contrast", res.Contrast.String())
			fmt.Fprintf(cmd.OutOrStdout(), "QR code saved as %s\n", res.Path)
			return nil
		},
	}

	cmd.Flags().String("qr-color", d.QRColor, "QR code color (#RRGGBB)")
	cmd.Flags().String("bg-color", d.BackgroundColor, "background color (#RRGGBB)")
	cmd.Flags().String("logo", "", "logo image drawn under the code (optional)")
	cmd.Flags().Float64("transparency", d.Transparency, "opacity of the code over the logo, 0..1")
	cmd.Flags().Int("border", d.BorderSize, "white border in pixels")
	cmd.Flags().Int("module-size", d.ModuleSize, "pixels per QR module")
	cmd.Flags().Int("border-modules", d.BorderModules, "quiet zone in modules")
	cmd.Flags().String("level", d.RecoveryLevel, "error correction level: L, M, Q or H")
	cmd.Flags().StringP("out", "o", d.Output, "output file (.png, .jpg, .gif, .bmp, .tif)")
	cmd.Flags().Bool("verify", false, "decode the written file and fail if it does not scan")
	cmd.Flags().BoolP("yes", "y", false, "do not ask before using low contrast colors")

	return cmd
}

// prompt asks on in/out whether to continue with low contrast colors.
// Anything other than y or yes declines.
func prompt(in io.Reader, out io.Writer) service.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(advice colorutil.Advice) bool {
		fmt.Fprintf(out, "Warning: Color combination may result in poor scannability!\n"+
			"Recommended minimum contrast ratio: %.0f:1\n"+
			"Current contrast ratio: %s\n\n"+
			"Do you want to continue anyway? [y/N] ", colorutil.LowContrastThreshold, advice)

		answer, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
