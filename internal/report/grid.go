package report

// Column is one cell slot of the table grid: an absolute x offset plus width.
type Column struct {
	X     float64
	Width float64
}

// BuildGrid turns an ordered list of column widths into absolute x offsets
// starting at leftMargin. The caller is responsible for choosing widths that
// fit the usable page width.
func BuildGrid(widths []float64, leftMargin float64) []Column {
	grid := make([]Column, len(widths))
	x := leftMargin
	for i, w := range widths {
		grid[i] = Column{X: x, Width: w}
		x += w
	}
	return grid
}

// Right returns the x offset of the column's right edge
func (c Column) Right() float64 {
	return c.X + c.Width
}
