package cli

import (
	"github.com/spf13/cobra"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
	"github.com/Badsnus/qrstudio/internal/domain/service"
	"github.com/Badsnus/qrstudio/pkg/logger/types"
)

// NewRootCmd wires every subcommand to the given service.
func NewRootCmd(qrService *service.QrService, log *types.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qrstudio",
		Short:         "QR code studio - colored QR codes with an optional logo underlay",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCmd(qrService, log))
	rootCmd.AddCommand(newContrastCmd(qrService))
	rootCmd.AddCommand(newScanCmd(qrService))

	return rootCmd
}

// Execute runs the command and logs a failure. It returns the exit code.
func Execute(cmd *cobra.Command, log *types.Logger) int {
	if err := cmd.Execute(); err != nil {
		if kind := errorz.KindOf(err); kind != nil {
			log.Errorw("Command failed", "kind", kind.Error(), "error", err)
		} else {
			log.Errorw("Command failed", "error", err)
		}
		return 1
	}
	return 0
}
