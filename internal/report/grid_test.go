package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGridOffsets(t *testing.T) {
	grid := BuildGrid(ColumnWidths, PageLeftMargin)

	assert.Len(t, grid, 9)
	assert.Equal(t, 10.0, grid[0].X)
	assert.Equal(t, 85.0, grid[1].X)

	// 10 + 75+75+105+115+115+115+60+65 = 735
	assert.Equal(t, 735.0, grid[8].X)
	assert.Equal(t, 800.0, grid[8].Right())
}

func TestBuildGridAdditive(t *testing.T) {
	grid := BuildGrid([]float64{100, 50, 25}, 5)

	assert.Equal(t, Column{X: 5, Width: 100}, grid[0])
	assert.Equal(t, Column{X: 105, Width: 50}, grid[1])
	assert.Equal(t, Column{X: 155, Width: 25}, grid[2])
}

func TestBuildGridEmpty(t *testing.T) {
	assert.Empty(t, BuildGrid(nil, 10))
}
