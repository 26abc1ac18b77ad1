package cmd

import (
	"fmt"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of myring",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("myring v%s\n", version.Version)
		fmt.Println("Truncated Myring Hull Explorer")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
