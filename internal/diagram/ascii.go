// Package diagram renders hull profiles for terminals and image files.
// It consumes hull.Result records and never feeds anything back into the
// computation.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

// ProfileChart draws the hull outline (upper and mirrored lower curve)
// as a terminal chart, width columns wide.
func ProfileChart(res *hull.Result, width, height int) string {
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}

	upper := resample(res.X, res.R, res.TotalLength, width)
	lower := make([]float64, len(upper))
	for i, r := range upper {
		lower[i] = -r
	}

	chart := asciigraph.PlotMany(
		[][]float64{upper, lower},
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("Hull profile, x ∈ [0, %.3f] m", res.TotalLength)),
	)
	return "\n" + chart + "\n"
}

// resample maps the non-uniformly spaced radius curve onto n uniformly
// spaced columns by linear interpolation, for plotting only.
func resample(xs, rs []float64, total float64, n int) []float64 {
	out := make([]float64, n)
	j := 0
	for i := 0; i < n; i++ {
		x := total * float64(i) / float64(n-1)
		for j < len(xs)-2 && xs[j+1] < x {
			j++
		}
		x0, x1 := xs[j], xs[j+1]
		r0, r1 := rs[j], rs[j+1]
		if x1 == x0 {
			out[i] = r0
			continue
		}
		t := (x - x0) / (x1 - x0)
		out[i] = r0 + t*(r1-r0)
	}
	return out
}

// DrawSummaryBox creates a boxed summary for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
