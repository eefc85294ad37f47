package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emrzvv/statdist/distribution"
)

const curvePoints = 400

// PlotDensity renders the pdf and cdf of dist over (0, xmax] into a
// single PNG.
func PlotDensity(dist distribution.Gamma, xmax float64, file string) error {
	if xmax <= 0 {
		// a few standard deviations past the mean covers the mass
		xmax = dist.Mean() + 4*dist.StdDev()
	}

	pdf := make(plotter.XYs, curvePoints)
	cdf := make(plotter.XYs, curvePoints)
	for i := 0; i < curvePoints; i++ {
		x := xmax * float64(i+1) / curvePoints
		pdf[i].X, pdf[i].Y = x, dist.Pdf(x)
		cdf[i].X, cdf[i].Y = x, dist.Cdf(x)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gamma(α=%.3g, β=%.3g)", dist.Shape(), dist.Rate())
	p.X.Label.Text = "x"

	pdfLine, err := plotter.NewLine(pdf)
	if err != nil {
		return err
	}
	cdfLine, err := plotter.NewLine(cdf)
	if err != nil {
		return err
	}
	cdfLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(pdfLine, cdfLine)
	p.Legend.Add("pdf", pdfLine)
	p.Legend.Add("cdf", cdfLine)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// PlotHistogram renders a normalized histogram of samples with the
// pdf of dist overlaid.
func PlotHistogram(dist distribution.Gamma, samples []float64, bins int, file string) error {
	h, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)

	xmax := dist.Mean() + 4*dist.StdDev()
	pdf := make(plotter.XYs, curvePoints)
	for i := 0; i < curvePoints; i++ {
		x := xmax * float64(i+1) / curvePoints
		pdf[i].X, pdf[i].Y = x, dist.Pdf(x)
	}
	pdfLine, err := plotter.NewLine(pdf)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sampled Gamma(α=%.3g, β=%.3g), n=%d",
		dist.Shape(), dist.Rate(), len(samples))
	p.X.Label.Text = "x"
	p.Add(h, pdfLine)
	p.Legend.Add("pdf", pdfLine)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
