package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command, handling any errors that occur during
// execution.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the tracelog command tree. Tests drive it
// directly with SetArgs and SetOut.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracelog",
		Short:         "Inspect and exercise trace logging settings",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCommand())
	root.AddCommand(newEmitCommand())
	return root
}
