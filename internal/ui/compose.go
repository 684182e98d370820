package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// canvas composes lipgloss-rendered blocks into a cell buffer so overlays
// and toasts can be drawn on top of the base view.
type canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// draw writes block with its top-left corner at x,y, cropping at the edges.
func (c *canvas) draw(x, y int, block string) {
	if block == "" {
		return
	}
	x = max(x, 0)
	y = max(y, 0)
	for i, line := range splitLines(block) {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// drawCentered centers block in the rows between the top and bottom margins.
func (c *canvas) drawCentered(block string, topMargin, bottomMargin int) {
	w, h := blockSize(block)
	x, y := centeredOffsets(c.width, c.height, w, h, topMargin, bottomMargin)
	c.draw(x, y, block)
}

// drawBottomRight anchors block to the bottom-right corner, inset by pad.
func (c *canvas) drawBottomRight(block string, pad int) {
	w, h := blockSize(block)
	c.draw(c.width-w-pad, c.height-h-pad, block)
}

func (c *canvas) render() string {
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(block string) []string {
	return strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
}

func blockSize(block string) (int, int) {
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	return max(w, 1), max(h, 1)
}

func centeredOffsets(containerWidth, containerHeight, contentWidth, contentHeight, topMargin, bottomMargin int) (int, int) {
	topMargin = max(topMargin, 0)
	bottomMargin = max(bottomMargin, 0)

	usable := max(containerHeight-topMargin-bottomMargin, contentHeight)
	y := topMargin + (usable-contentHeight)/2
	y = min(y, containerHeight-bottomMargin-contentHeight)
	y = max(y, topMargin, 0)

	x := max((containerWidth-contentWidth)/2, 0)
	return x, y
}

// layerView draws the base frame and then each layer in order.
func layerView(base string, width, height int, layers ...func(*canvas)) string {
	if len(layers) == 0 || width <= 0 || height <= 0 {
		return base
	}
	c := newCanvas(width, height)
	c.draw(0, 0, base)
	for _, layer := range layers {
		if layer != nil {
			layer(c)
		}
	}
	return c.render()
}
