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
)

// ExportPlanDiagram exports a bolt group plan view to an image file
func ExportPlanDiagram(data PlanViewData, filename string) error {
	p := plot.New()
	if data.Name != "" {
		p.Title.Text = data.Name
	} else {
		p.Title.Text = "Bolt Group Plan View"
	}

	unit := data.Units
	if unit == "" {
		unit = "length"
	}
	p.X.Label.Text = fmt.Sprintf("X (%s)", unit)
	p.Y.Label.Text = fmt.Sprintf("Y (%s)", unit)

	// Fasteners
	if len(data.Fasteners) > 0 {
		pts := make(plotter.XYs, len(data.Fasteners))
		for i, f := range data.Fasteners {
			pts[i] = plotter.XY{X: f.X, Y: f.Y}
		}
		fasteners, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		fasteners.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		fasteners.GlyphStyle.Radius = vg.Points(6)
		fasteners.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(fasteners)
		p.Legend.Add("fastener", fasteners)
	}

	// Load application points
	if len(data.LoadPoints) > 0 {
		pts := make(plotter.XYs, len(data.LoadPoints))
		for i, lp := range data.LoadPoints {
			pts[i] = plotter.XY{X: lp.X, Y: lp.Y}
		}
		loads, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		loads.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		loads.GlyphStyle.Radius = vg.Points(5)
		loads.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(loads)
		p.Legend.Add("load point", loads)
	}

	// Reference point
	ref, err := plotter.NewScatter(plotter.XYs{{X: data.Reference.X, Y: data.Reference.Y}})
	if err != nil {
		return err
	}
	ref.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	ref.GlyphStyle.Radius = vg.Points(7)
	ref.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(ref)
	p.Legend.Add("reference", ref)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.Reference.X, Y: data.Reference.Y}},
		Labels: []string{"  C.G."},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	p.Legend.Top = true

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png":
		return p.Save(width, height, filename)
	case ".svg":
		return p.Save(width, height, filename)
	case ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
