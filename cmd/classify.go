package cmd

import (
	"github.com/spf13/cobra"

	"vapor.dev/pkg/vapor/internal/domain"
)

// classifyCmd represents the classify command.
var classifyCmd = newClassifyCmd()

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <tag> <key>...",
		Short: "Show which runtime helper a static binding compiles to",
		Long: `Show the runtime write helper chosen for each key bound on tag.
Prefix a key with "." to force a property or "^" to force an attribute.`,
		Example: `  vapor classify input value .indeterminate ^form list`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Classify(cmd.Context(), domain.ClassifyArgs{
				Tag:  args[0],
				Keys: args[1:],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
