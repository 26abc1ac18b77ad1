package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/config"
)

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print an annotated example parameter file",
	Long: `Print a commented parameter file holding the default hull. Redirect it
to a file, edit it, and pass it back with 'myring compute --config'.

Example:
  myring example-config > hull.cfg
  myring compute --config hull.cfg`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.ExampleFile)
	},
}

func init() {
	rootCmd.AddCommand(exampleConfigCmd)
}
