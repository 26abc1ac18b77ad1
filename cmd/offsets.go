package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

var (
	offsetsDiameter   float64
	offsetsExponent   float64
	offsetsHeadLength float64
	offsetsTailLength float64
	offsetsTailAngle  float64
	offsetsFront      float64 // mm
	offsetsStern      float64 // mm
)

var offsetsCmd = &cobra.Command{
	Use:   "offsets",
	Short: "Resolve radius targets into truncation offsets",
	Long: `Convert desired front and/or stern radii into the equivalent nose and
stern truncation offsets, without running the full profile computation.

The head inversion is closed-form; the tail cubic is inverted through a
dense sorted lookup table. Targets outside the attainable radius range
saturate at the nearest achievable cut.

Examples:
  # Offsets for a 90 mm nose cut radius on the default hull
  myring offsets --front-radius 90

  # Both ends of a custom hull
  myring offsets -d 0.3 -a 0.2 -c 0.8 --front-radius 100 --stern-radius 35`,
	Run: runOffsets,
}

func init() {
	rootCmd.AddCommand(offsetsCmd)
	def := hull.DefaultParameters()

	offsetsCmd.Flags().Float64VarP(&offsetsDiameter, "diameter", "d", def.Diameter, "Maximum hull diameter (m)")
	offsetsCmd.Flags().Float64VarP(&offsetsExponent, "exponent", "n", def.HeadExponent, "Myring head exponent")
	offsetsCmd.Flags().Float64VarP(&offsetsHeadLength, "head", "a", def.HeadLength, "Full head length (m)")
	offsetsCmd.Flags().Float64VarP(&offsetsTailLength, "tail", "c", def.TailLength, "Full tail length (m)")
	offsetsCmd.Flags().Float64VarP(&offsetsTailAngle, "angle", "t", def.TailAngleDeg, "Tail half-angle at the tip (deg)")
	offsetsCmd.Flags().Float64Var(&offsetsFront, "front-radius", 0, "Target front radius (mm)")
	offsetsCmd.Flags().Float64Var(&offsetsStern, "stern-radius", 0, "Target stern radius (mm)")
}

func runOffsets(cmd *cobra.Command, args []string) {
	if offsetsFront <= 0 && offsetsStern <= 0 {
		fmt.Println("Error: provide at least one of --front-radius or --stern-radius.")
		fmt.Println("Use 'myring offsets --help' for usage information.")
		return
	}

	p := hull.DefaultParameters()
	p.Diameter = offsetsDiameter
	p.HeadExponent = offsetsExponent
	p.HeadLength = offsetsHeadLength
	p.TailLength = offsetsTailLength
	p.TailAngleDeg = offsetsTailAngle
	if offsetsFront > 0 {
		v := offsetsFront / 1000
		p.FrontRadiusTarget = &v
	}
	if offsetsStern > 0 {
		v := offsetsStern / 1000
		p.SternRadiusTarget = &v
	}

	res, err := hull.Compute(p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TRUNCATION OFFSET RESOLUTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if offsetsFront > 0 {
		fmt.Fprintf(w, "  Front radius target:\t%.2f mm\n", offsetsFront)
		fmt.Fprintf(w, "  → head offset:\t%.6f m\n", res.HeadOffset)
		fmt.Fprintf(w, "  → front radius achieved:\t%.2f mm\n", res.FrontRadius*1000)
	}
	if offsetsStern > 0 {
		fmt.Fprintf(w, "  Stern radius target:\t%.2f mm\n", offsetsStern)
		fmt.Fprintf(w, "  → tail offset:\t%.6f m\n", res.TailOffset)
		fmt.Fprintf(w, "  → stern radius achieved:\t%.2f mm\n", res.SternRadius*1000)
	}
	w.Flush()
	fmt.Println()
}
