package cmd

import (
	"fmt"
	"os"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "myring",
	Short: "Truncated Myring AUV Hull Calculator",
	Long: `myring - Truncated Myring Hull Explorer

A CLI tool for sizing axisymmetric underwater-vehicle hulls built from
the classic Myring head / cylinder / cubic-tail profile, with optional
nose and stern truncation.

This tool helps vehicle designers compute:
  - The sampled hull radius profile for a given parameter set
  - Truncation offsets that hit target front/stern radii
  - Displaced volume, center of buoyancy and wetted surface area
  - An ITTC 1957 skin-friction drag estimate at cruise speed
  - Profile plots and a 3D revolution mesh (binary STL)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   myring v%-48s║\n", version.Version)
		fmt.Println("  ║   Truncated Myring Hull Explorer                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing truncated Myring bodies of revolution")
		fmt.Println("  for autonomous underwater vehicles.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Piecewise-analytic head/mid/tail hull profile")
		fmt.Println("    • Offset solving for target front and stern radii")
		fmt.Println("    • Volume, center of buoyancy, wetted area, friction drag")
		fmt.Println("    • ASCII, PNG/SVG and STL output")
		fmt.Println()
		fmt.Println("  Use 'myring --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
