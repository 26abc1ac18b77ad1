package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/config"
	"github.com/Hafeezqazi/myring-explorer-AUV/internal/diagram"
	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
	"github.com/Hafeezqazi/myring-explorer-AUV/internal/render"
)

var (
	// Geometry inputs
	computeDiameter     float64
	computeHeadExponent float64
	computeHeadLength   float64
	computeMidLength    float64
	computeTailLength   float64
	computeTailAngle    float64

	// Truncation inputs
	computeHeadOffset  float64
	computeTailOffset  float64
	computeFrontRadius float64 // mm, <=0 means unset
	computeSternRadius float64 // mm, <=0 means unset

	// Discretisation and fluid
	computeSamples   int
	computeDensity   float64
	computeViscosity float64
	computeSpeed     float64

	// Input/output options
	computeConfig string
	computeChart  bool
	computePlot   string
	computeArea   string
	computeSTL    string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the hull profile and its hydrostatic metrics",
	Long: `Compute the truncated Myring profile for the given parameters and
report the resolved truncation offsets, displaced volume, center of
buoyancy, wetted surface area and the ITTC 1957 friction drag estimate.

All linear inputs are in meters except the radius targets, which are
given in millimeters. When a radius target is set it overrides the
matching offset flag; the offset actually used is echoed back in the
report.

Examples:
  # Default survey-class hull in seawater at 2 m/s
  myring compute

  # Hit a 90 mm front radius and export a profile plot
  myring compute --front-radius 90 --plot hull.png

  # Parameters from a config file, plus a 3D mesh
  myring compute --config hull.cfg --stl hull.stl

  # Pure hydrostatics, no drag estimate
  myring compute --speed 0`,
	Run: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
	def := hull.DefaultParameters()

	// Geometry flags
	computeCmd.Flags().Float64VarP(&computeDiameter, "diameter", "d", def.Diameter, "Maximum hull diameter (m)")
	computeCmd.Flags().Float64VarP(&computeHeadExponent, "exponent", "n", def.HeadExponent, "Myring head exponent")
	computeCmd.Flags().Float64VarP(&computeHeadLength, "head", "a", def.HeadLength, "Full head length (m)")
	computeCmd.Flags().Float64VarP(&computeMidLength, "mid", "b", def.MidLength, "Cylindrical midbody length (m)")
	computeCmd.Flags().Float64VarP(&computeTailLength, "tail", "c", def.TailLength, "Full tail length (m)")
	computeCmd.Flags().Float64VarP(&computeTailAngle, "angle", "t", def.TailAngleDeg, "Tail half-angle at the tip (deg)")

	// Truncation flags
	computeCmd.Flags().Float64Var(&computeHeadOffset, "head-offset", def.HeadOffset, "Nose truncation offset (m)")
	computeCmd.Flags().Float64Var(&computeTailOffset, "tail-offset", def.TailOffset, "Stern truncation offset (m)")
	computeCmd.Flags().Float64Var(&computeFrontRadius, "front-radius", 0, "Target front radius (mm); overrides --head-offset")
	computeCmd.Flags().Float64Var(&computeSternRadius, "stern-radius", 0, "Target stern radius (mm); overrides --tail-offset")

	// Discretisation and fluid flags
	computeCmd.Flags().IntVar(&computeSamples, "samples", def.SamplesPerMeter, "Axial stations per meter")
	computeCmd.Flags().Float64Var(&computeDensity, "density", def.Density, "Fluid density (kg/m³)")
	computeCmd.Flags().Float64Var(&computeViscosity, "viscosity", def.Viscosity, "Kinematic viscosity (m²/s)")
	computeCmd.Flags().Float64VarP(&computeSpeed, "speed", "U", *def.Speed, "Cruise speed (m/s); 0 disables the drag estimate")

	// Input/output flags
	computeCmd.Flags().StringVar(&computeConfig, "config", "", "Read parameters from a config file (flags still win)")
	computeCmd.Flags().BoolVar(&computeChart, "chart", false, "Draw an ASCII profile chart")
	computeCmd.Flags().StringVar(&computePlot, "plot", "", "Export a profile plot (.png/.svg/.pdf)")
	computeCmd.Flags().StringVar(&computeArea, "area-plot", "", "Export the area distribution plot")
	computeCmd.Flags().StringVar(&computeSTL, "stl", "", "Export the revolution mesh as binary STL")
}

// gatherParameters merges defaults, the optional config file and any
// explicitly set flags, in that order of precedence.
func gatherParameters(cmd *cobra.Command) (hull.Parameters, error) {
	p := hull.DefaultParameters()

	if computeConfig != "" {
		var err error
		p, err = config.Load(computeConfig, p)
		if err != nil {
			return p, err
		}
	}

	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("diameter") {
		p.Diameter = computeDiameter
	}
	if set("exponent") {
		p.HeadExponent = computeHeadExponent
	}
	if set("head") {
		p.HeadLength = computeHeadLength
	}
	if set("mid") {
		p.MidLength = computeMidLength
	}
	if set("tail") {
		p.TailLength = computeTailLength
	}
	if set("angle") {
		p.TailAngleDeg = computeTailAngle
	}
	if set("head-offset") {
		p.HeadOffset = computeHeadOffset
	}
	if set("tail-offset") {
		p.TailOffset = computeTailOffset
	}
	if set("samples") {
		p.SamplesPerMeter = computeSamples
	}
	if set("density") {
		p.Density = computeDensity
	}
	if set("viscosity") {
		p.Viscosity = computeViscosity
	}
	if set("front-radius") && computeFrontRadius > 0 {
		v := computeFrontRadius / 1000
		p.FrontRadiusTarget = &v
	}
	if set("stern-radius") && computeSternRadius > 0 {
		v := computeSternRadius / 1000
		p.SternRadiusTarget = &v
	}
	if set("speed") {
		if computeSpeed > 0 {
			v := computeSpeed
			p.Speed = &v
		} else {
			p.Speed = nil
		}
	}
	return p, nil
}

func runCompute(cmd *cobra.Command, args []string) {
	p, err := gatherParameters(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := hull.Compute(p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printComputeReport(p, res)

	if computeChart {
		fmt.Println(diagram.ProfileChart(res, 72, 14))
	}
	if computePlot != "" {
		if err := diagram.ExportProfilePlot(res, computePlot); err != nil {
			fmt.Printf("Error exporting plot: %v\n", err)
			return
		}
		fmt.Printf("  Profile plot written to %s\n", computePlot)
	}
	if computeArea != "" {
		if err := diagram.ExportAreaPlot(res, computeArea); err != nil {
			fmt.Printf("Error exporting area plot: %v\n", err)
			return
		}
		fmt.Printf("  Area plot written to %s\n", computeArea)
	}
	if computeSTL != "" {
		tris := render.Triangulate(res.Surface)
		if err := render.CreateSTL(computeSTL, tris); err != nil {
			fmt.Printf("Error exporting STL: %v\n", err)
			return
		}
		fmt.Printf("  Revolution mesh (%d triangles) written to %s\n", len(tris), computeSTL)
	}
	fmt.Println()
}

func printComputeReport(p hull.Parameters, res *hull.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TRUNCATED MYRING HULL PROFILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (D):\t%.4f m\n", p.Diameter)
	fmt.Fprintf(w, "  Head exponent (n):\t%.2f\n", p.HeadExponent)
	fmt.Fprintf(w, "  Head / Mid / Tail (a/b/c):\t%.4f / %.4f / %.4f m\n", p.HeadLength, p.MidLength, p.TailLength)
	fmt.Fprintf(w, "  Tail half-angle (θ):\t%.2f°\n", p.TailAngleDeg)
	if p.FrontRadiusTarget != nil {
		fmt.Fprintf(w, "  Front radius target:\t%.2f mm\n", *p.FrontRadiusTarget*1000)
	}
	if p.SternRadiusTarget != nil {
		fmt.Fprintf(w, "  Stern radius target:\t%.2f mm\n", *p.SternRadiusTarget*1000)
	}
	fmt.Fprintf(w, "  Stations per meter:\t%d\n", p.SamplesPerMeter)
	fmt.Fprintf(w, "  Fluid ρ / ν:\t%.1f kg/m³ / %.3g m²/s\n", p.Density, p.Viscosity)
	if p.Speed != nil {
		fmt.Fprintf(w, "  Cruise speed (U):\t%.2f m/s\n", *p.Speed)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESOLVED GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Head offset used:\t%.6f m\n", res.HeadOffset)
	fmt.Fprintf(w, "  Tail offset used:\t%.6f m\n", res.TailOffset)
	fmt.Fprintf(w, "  Effective head length:\t%.4f m\n", res.HeadEffective)
	fmt.Fprintf(w, "  Effective tail length:\t%.4f m\n", res.TailEffective)
	fmt.Fprintf(w, "  Total length (L):\t%.4f m\n", res.TotalLength)
	fmt.Fprintf(w, "  Front radius:\t%.2f mm\n", res.FrontRadius*1000)
	fmt.Fprintf(w, "  Stern radius:\t%.2f mm\n", res.SternRadius*1000)
	fmt.Fprintf(w, "  Fineness ratio (L/D):\t%.3f\n", res.LengthOverDiameter)
	fmt.Fprintf(w, "  Profile stations:\t%d\n", len(res.X))
	w.Flush()
	fmt.Println()

	fmt.Println("HYDROSTATICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Displaced volume:\t%.6f m³\n", res.Volume)
	fmt.Fprintf(w, "  Displacement:\t%.2f kg\n", res.Volume*p.Density)
	fmt.Fprintf(w, "  Center of buoyancy (x):\t%.4f m\n", res.BuoyancyCenterX)
	fmt.Fprintf(w, "  Wetted surface area:\t%.4f m²\n", res.WettedArea)
	w.Flush()
	fmt.Println()

	if res.ReynoldsNumber != nil {
		fmt.Println("DRAG ESTIMATE (ITTC 1957):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Reynolds number (Re):\t%.4g\n", *res.ReynoldsNumber)
		fmt.Fprintf(w, "  Friction coefficient (Cf):\t%.6f\n", *res.FrictionCoefficient)
		fmt.Fprintf(w, "  Friction drag (Df):\t%.3f N\n", *res.FrictionDrag)
		w.Flush()
		fmt.Println()
	}

	fmt.Println(diagram.DrawSummaryBox("HULL SUMMARY", []string{
		fmt.Sprintf("L = %.3f m   D = %.3f m   L/D = %.2f", res.TotalLength, p.Diameter, res.LengthOverDiameter),
		fmt.Sprintf("V = %.4f m³   CB at x = %.3f m", res.Volume, res.BuoyancyCenterX),
		fmt.Sprintf("S = %.3f m²", res.WettedArea),
	}))
}
