package diagram

import (
	"fmt"
	"strings"
)

// Point represents a 2D plan-view coordinate
type Point struct {
	X float64
	Y float64
}

// PlanViewData holds data for drawing a bolt group plan view
type PlanViewData struct {
	Name  string
	Units string // e.g. "mm"; informational only

	// Fastener positions projected onto the connection plane
	Fasteners []Point

	// Load application points projected onto the connection plane
	LoadPoints []Point

	// Reduction target (centroid or explicit reference point)
	Reference Point
}

// DrawASCIIPlanView creates an ASCII plan view of the bolt pattern,
// the load application points and the reference point
func DrawASCIIPlanView(data PlanViewData) string {
	var sb strings.Builder

	widthChars := 41
	heightChars := 21

	minX, maxX, minY, maxY := bounds(data)

	// Pad the view so markers stay off the border
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	minX -= spanX * 0.1
	maxX += spanX * 0.1
	minY -= spanY * 0.1
	maxY += spanY * 0.1
	spanX = maxX - minX
	spanY = maxY - minY

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	place := func(p Point, marker rune) {
		col := int((p.X - minX) / spanX * float64(widthChars-1))
		row := int((maxY - p.Y) / spanY * float64(heightChars-1))
		grid[row][col] = marker
	}

	for _, p := range data.LoadPoints {
		place(p, '▼')
	}
	for _, p := range data.Fasteners {
		place(p, '●')
	}
	// Reference marker drawn last so it stays visible
	place(data.Reference, '✛')

	sb.WriteString("\n")
	sb.WriteString("  BOLT GROUP PLAN VIEW (X-Y)\n")
	sb.WriteString("  ──────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	unit := data.Units
	if unit == "" {
		unit = "length units"
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ● = Fastener\n")
	sb.WriteString("  ▼ = Load application point\n")
	sb.WriteString(fmt.Sprintf("  ✛ = Reference point at (%.1f, %.1f) %s\n", data.Reference.X, data.Reference.Y, unit))
	sb.WriteString(fmt.Sprintf("  View spans %.1f × %.1f %s\n", spanX, spanY, unit))

	return sb.String()
}

// bounds returns the extent of every drawable point
func bounds(data PlanViewData) (minX, maxX, minY, maxY float64) {
	minX, maxX = data.Reference.X, data.Reference.X
	minY, maxY = data.Reference.Y, data.Reference.Y

	grow := func(p Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for _, p := range data.Fasteners {
		grow(p)
	}
	for _, p := range data.LoadPoints {
		grow(p)
	}

	return minX, maxX, minY, maxY
}
