package cli

import (
	"fmt"

	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
var Version string

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version == "" {
				fmt.Println(term.Yellow("Version information not available"))
				return nil
			}

			fmt.Printf("backoffice version %s\n", Version)
			return nil
		},
	}
}
