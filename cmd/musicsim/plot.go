package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/makhpatten/music-df-simulation/music"
)

// savePlot renders the pseudo-spectrum as a line chart and writes it to path.
func savePlot(sp music.Spectrum, path string) error {
	p := plot.New()
	p.Title.Text = "MUSIC pseudo-spectrum"
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Power"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(sp))
	for i, s := range sp {
		pts[i].X = s.AngleDeg
		pts[i].Y = s.Power
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255} // steel blue

	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
