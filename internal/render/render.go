// Package render draws percolation grids as text or as PNG heatmaps.
// It only reads grid snapshots; it never touches the connectivity engine.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/percolate/percolation"
)

// ErrEmptySnapshot indicates a snapshot with no rows or ragged rows.
var ErrEmptySnapshot = errors.New("render: snapshot must be a non-empty square")

// Glyphs used by Text, indexed by SiteState.
var glyphs = [...]byte{
	percolation.Closed: '#',
	percolation.Open:   '.',
	percolation.Full:   '~',
}

// Text writes one line per row: '#' closed, '.' open, '~' full.
func Text(w io.Writer, snap [][]percolation.SiteState) error {
	if err := check(snap); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, row := range snap {
		for _, s := range row {
			if int(s) >= len(glyphs) {
				return fmt.Errorf("render: unknown site state %d", s)
			}
			bw.WriteByte(glyphs[s])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Sizes used for PNG output.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// statePalette maps heatmap levels 0,1,2 onto Closed, Open, Full.
type statePalette []color.Color

func (p statePalette) Colors() []color.Color { return p }

var defaultPalette = statePalette{
	color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}, // closed
	color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}, // open
	color.RGBA{R: 0x33, G: 0x77, B: 0xdd, A: 0xff}, // full
}

// snapshotGrid adapts a snapshot to plotter.GridXYZ with row 1 at the top.
type snapshotGrid [][]percolation.SiteState

func (g snapshotGrid) Dims() (c, r int)   { return len(g[0]), len(g) }
func (g snapshotGrid) Z(c, r int) float64 { return float64(g[len(g)-1-r][c]) }
func (g snapshotGrid) X(c int) float64    { return float64(c) }
func (g snapshotGrid) Y(r int) float64    { return float64(r) }

// Heatmap builds a plot of snap coloured by site state.
func Heatmap(snap [][]percolation.SiteState, title string) (*plot.Plot, error) {
	if err := check(snap); err != nil {
		return nil, err
	}
	h := plotter.NewHeatMap(snapshotGrid(snap), defaultPalette)
	// Pin the range so the colours stay fixed on uniform grids.
	h.Min, h.Max = float64(percolation.Closed), float64(percolation.Full)

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(h)
	return p, nil
}

// WritePNG renders snap as a PNG heatmap to w.
func WritePNG(w io.Writer, snap [][]percolation.SiteState, title string) error {
	p, err := Heatmap(snap, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePNG renders snap as a PNG heatmap to the file at path.
func SavePNG(path string, snap [][]percolation.SiteState, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := WritePNG(f, snap, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func check(snap [][]percolation.SiteState) error {
	if len(snap) == 0 {
		return ErrEmptySnapshot
	}
	for _, row := range snap {
		if len(row) != len(snap) {
			return ErrEmptySnapshot
		}
	}
	return nil
}
