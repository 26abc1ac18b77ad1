package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

// ExportProfilePlot exports the hull outline to an image file. The
// format follows the file extension (.png, .svg, .pdf), defaulting to
// PNG.
func ExportProfilePlot(res *hull.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Truncated Myring Hull Profile"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "r (m)"

	upper := make(plotter.XYs, len(res.X))
	lower := make(plotter.XYs, len(res.X))
	for i := range res.X {
		upper[i] = plotter.XY{X: res.X[i], Y: res.R[i]}
		lower[i] = plotter.XY{X: res.X[i], Y: -res.R[i]}
	}

	for _, pts := range []plotter.XYs{upper, lower} {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Close the two open ends of the outline.
	for _, x := range []float64{res.X[0], res.X[len(res.X)-1]} {
		r := res.FrontRadius
		if x != res.X[0] {
			r = res.SternRadius
		}
		if r == 0 {
			continue
		}
		end, err := plotter.NewLine(plotter.XYs{{X: x, Y: -r}, {X: x, Y: r}})
		if err != nil {
			return err
		}
		end.LineStyle.Width = vg.Points(2)
		end.LineStyle.Color = color.Black
		p.Add(end)
	}

	// Segment junctions.
	diameter := res.TotalLength / res.LengthOverDiameter
	for _, x := range []float64{res.HeadEffective, res.HeadEffective + res.MidLength} {
		line, err := plotter.NewLine(plotter.XYs{
			{X: x, Y: -0.6 * diameter},
			{X: x, Y: 0.6 * diameter},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = color.Gray{Y: 128}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	// Center of buoyancy marker on the axis.
	cb, err := plotter.NewScatter(plotter.XYs{{X: res.BuoyancyCenterX, Y: 0}})
	if err != nil {
		return err
	}
	cb.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	cb.GlyphStyle.Radius = vg.Points(5)
	cb.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(cb)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: res.BuoyancyCenterX, Y: 0.08 * diameter}},
		Labels: []string{fmt.Sprintf("CB x=%.3f m", res.BuoyancyCenterX)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	width := 10 * vg.Inch
	height := 3 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportAreaPlot exports the cross-section area distribution A(x), the
// curve whose integral is the displaced volume.
func ExportAreaPlot(res *hull.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Cross-Section Area Distribution"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "A (m²)"

	pts := make(plotter.XYs, len(res.X))
	for i := range res.X {
		pts[i] = plotter.XY{X: res.X[i], Y: res.Areas[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{B: 139, A: 255}
	p.Add(line)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
