package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vapor.dev/pkg/vapor/internal/domain"
	m "vapor.dev/pkg/vapor/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Generate one program and show the module",
		Long:  "Generate the module for a single .vapor.yaml program and show it without writing anything.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Path:          m.Path(args[0]),
				RuntimeModule: viper.GetString(runtimeModuleConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
