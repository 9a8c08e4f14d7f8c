package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version used to build it and the runtime module generated code imports.",
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := "unknown", "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			cmd.Println("vapor version\t", version)
			cmd.Println("go version\t", goVersion)
			cmd.Println("runtime module\t", viper.GetString(runtimeModuleConfigKey))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
