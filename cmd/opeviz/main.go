// Command opeviz renders two diagnostic charts as a single HTML page:
// the log-gamma approximation error against the standard library's
// math.Lgamma, and a scatter of plaintext -> ciphertext pairs that
// makes the scheme's order-preservation visually obvious.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"bclo-ope/ope"
	"bclo-ope/specfun"
	"bclo-ope/vrange"
)

func main() {
	outPath := flag.String("out", "opeviz.html", "output HTML file")
	key := flag.String("key", "opeviz-demo-key", "OPE key for the monotonicity scatter")
	samples := flag.Int("samples", 60, "number of plaintexts to sample for the scatter")
	flag.Parse()

	page := components.NewPage().SetPageTitle("OPE diagnostics")
	page.AddCharts(loggamErrorChart(), monotonicityChart(*key, *samples))

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
}

// loggamErrorChart sweeps x across a wide range and plots how far
// specfun.Loggam drifts from math.Lgamma, as the absolute difference
// divided by max(1, |math.Lgamma(x)|).
func loggamErrorChart() *charts.Line {
	xs := []float64{}
	for x := 1.0; x <= 2000; x += 2000.0 / 200.0 {
		xs = append(xs, x)
	}

	xAxis := make([]string, len(xs))
	items := make([]opts.LineData, len(xs))
	for i, x := range xs {
		want, _ := math.Lgamma(x)
		got := specfun.Loggam(x)
		relErr := math.Abs(got-want) / math.Max(1, math.Abs(want))
		xAxis[i] = fmt.Sprintf("%.1f", x)
		items[i] = opts.LineData{Value: relErr}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Loggam relative error vs. math.Lgamma",
			Subtitle: "Rocktaeschel asymptotic expansion, x in [1, 2000]",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "relative error"}),
	)
	line.SetXAxis(xAxis).AddSeries("relative error", items)
	return line
}

// monotonicityChart encrypts an evenly spaced sample of the input
// domain and scatters plaintext against ciphertext: a visibly
// non-decreasing curve is a cheap visual sanity check of §8 invariant 3.
func monotonicityChart(key string, n int) *charts.Scatter {
	in, _ := vrange.New(0, 1e12)
	out, _ := vrange.New(0, 1e24)
	o, err := ope.New([]byte(key), in, out)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Plaintext vs. ciphertext",
			Subtitle: "Visual check: the curve should never turn downward",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "plaintext"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ciphertext"}),
	)

	if err != nil {
		return sc
	}

	step := in.Size() / float64(n)
	items := make([]opts.ScatterData, 0, n)
	for i := 0; i < n; i++ {
		p := math.Floor(float64(i) * step)
		c, err := o.Encrypt(p)
		if err != nil {
			continue
		}
		items = append(items, opts.ScatterData{Value: []interface{}{p, c}})
	}
	sc.AddSeries("encrypt(p)", items)
	return sc
}
