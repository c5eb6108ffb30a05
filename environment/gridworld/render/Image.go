package render

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
)

const (
	// CellSize is the width and height of a cell in pixels
	CellSize = 50

	margin = 10
	gap    = 4
)

var (
	walkableColour = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	terminalColour = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	agentColour    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	outlineColour  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Image draws every transition of a grid world to a PNG file. Frames are
// written to dir as frame00001.png, frame00002.png, and so on.
type Image struct {
	grid  *gridworld.Grid
	dir   string
	frame int
	err   error
}

// NewImage returns a new Image observer writing frames of grid g to dir
func NewImage(g *gridworld.Grid, dir string) *Image {
	return &Image{grid: g, dir: dir}
}

// Observe draws the grid with the agent at nextState and saves the frame.
// The first error encountered is kept and returned by Err, after which no
// further frames are saved.
func (i *Image) Observe(state, action, nextState int, reward float64) {
	if i.err != nil {
		return
	}

	i.frame++
	dc := i.draw(nextState, reward, gridworld.Action(action))
	path := filepath.Join(i.dir, fmt.Sprintf("frame%05d.png", i.frame))
	if err := dc.SavePNG(path); err != nil {
		i.err = fmt.Errorf("observe: could not save frame %d: %w", i.frame,
			err)
	}
}

// Err returns the first error encountered while saving frames
func (i *Image) Err() error {
	return i.err
}

// Frames returns the number of frames drawn
func (i *Image) Frames() int {
	return i.frame
}

// Render returns the image of the grid with the agent in state agent
func (i *Image) Render(agent int, reward float64,
	action gridworld.Action) image.Image {
	return i.draw(agent, reward, action).Image()
}

// cellOrigin returns the pixel coordinates of the top left corner of the
// cell at (r, c)
func cellOrigin(r, c int) (x, y float64) {
	return float64(margin + c*(CellSize+gap)), float64(margin + r*(CellSize+gap))
}

func (i *Image) draw(agent int, reward float64,
	action gridworld.Action) *gg.Context {
	rows, cols := i.grid.Dims()
	width := cols*(CellSize+gap) + 2*margin
	height := rows*(CellSize+gap) + 2*margin + CellSize

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.Clear()

	dc.SetLineWidth(2)
	for s := 0; s < i.grid.NumStates(); s++ {
		r, c := i.grid.CoordOf(s)
		x, y := cellOrigin(r, c)
		cell := i.grid.Cell(s)

		dc.DrawRectangle(x, y, CellSize, CellSize)
		if cell.IsTerminal() {
			dc.SetColor(terminalColour)
		} else {
			dc.SetColor(walkableColour)
		}
		dc.FillPreserve()
		dc.SetColor(outlineColour)
		dc.Stroke()

		if cell.IsTerminal() {
			dc.SetColor(walkableColour)
			dc.DrawStringAnchored(fmt.Sprintf("%.1f", cell.Reward()),
				x+CellSize/2, y+CellSize/2, 0.5, 0.5)
		}
	}

	if i.grid.ValidState(agent) {
		r, c := i.grid.CoordOf(agent)
		x, y := cellOrigin(r, c)
		dc.DrawCircle(x+CellSize/2, y+CellSize/2, CellSize/5)
		dc.SetColor(agentColour)
		dc.Fill()
	}

	dc.SetColor(outlineColour)
	textY := float64(height - CellSize/2)
	dc.DrawStringAnchored(fmt.Sprintf("r= %.1f", reward), margin, textY, 0,
		0.5)
	dc.DrawStringAnchored(fmt.Sprintf("action: %v", action),
		margin+2*CellSize, textY, 0, 0.5)

	return dc
}
