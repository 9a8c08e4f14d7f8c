package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vapor.dev/pkg/vapor/internal/domain"
	m "vapor.dev/pkg/vapor/internal/model"
)

// compileCmd represents the compile command.
var compileCmd = newCompileCmd()

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [paths...]",
		Short: "Compile IR programs into render modules",
		Long:  compileLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Compile(cmd.Context(), domain.CompileArgs{
				Paths:         parsePaths(args),
				Exclude:       viper.GetStringSlice(excludeConfigKey),
				Output:        m.Path(viper.GetString(outputFlagName)),
				Threads:       viper.GetUint(compileParallelConfigKey),
				Check:         viper.GetBool(checkConfigKey),
				RuntimeModule: viper.GetString(runtimeModuleConfigKey),
			})
		},
	}

	cmd.Flags().UintP(parallelFlagName, "p", defaultCompileParallel, "number of programs compiled in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), compileParallelConfigKey)

	cmd.Flags().Bool(checkFlagName, defaultCheck, "report out-of-date modules with a diff instead of writing them")
	bindFlagToConfig(cmd.Flags().Lookup(checkFlagName), checkConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
