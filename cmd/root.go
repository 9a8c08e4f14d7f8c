// Package cmd provides the root command and CLI setup for vapor.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vapor.dev/pkg/vapor/internal/adapter"
	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/codegen"
	"vapor.dev/pkg/vapor/internal/controller"
	"vapor.dev/pkg/vapor/internal/domain"
	m "vapor.dev/pkg/vapor/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var irAdapter adapter.IRFileAdapter
var artifactStore adapter.ArtifactStore
var table *classify.Table
var compiler domain.Compiler
var workflow domain.Workflow
var ui controller.UI

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	irAdapter = adapter.NewLocalIRFileAdapter(fsAdapter)
	artifactStore = adapter.NewArtifactStore(fsAdapter)
	table = classify.NewTable(nil)
	compiler = domain.NewCompiler(irAdapter, table)
	workflow = domain.NewWorkflow(
		fsAdapter,
		artifactStore,
		ui,
		compiler,
		table,
	)
}

const pathPatternsHelp = `Supports path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories (not recursive)
  - app.vapor.yaml a single program`

const rootLongDescription = `Vapor compiles template IR programs into render modules that update
the DOM through fine-grained patch helpers. Each reactive effect is
guarded so it only writes when one of its dependencies changed.

` + pathPatternsHelp

const compileLongDescription = `Compile every *.vapor.yaml program under the given paths (default: ./...)
into a .js module. Modules are written next to their sources, or under
--output mirroring the source tree.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vapor",
		Short: "Fine-grained render code generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(outputFlagName, "o", defaultOutputDir, "directory generated modules are written to (default: next to each source)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayP(excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().String(runtimeModuleFlagName, codegen.DefaultRuntimeModule, "module generated code imports runtime helpers from")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runtimeModuleFlagName), runtimeModuleConfigKey)

	cmd.PersistentFlags().BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().String(logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
