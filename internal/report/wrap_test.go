package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// measureByRunes gives every character a fixed 5pt width so the packing
// decisions are easy to reason about in tests
func measureByRunes(s string) float64 {
	return float64(len([]rune(s))) * 5
}

func TestWrapTextEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, WrapText("", measureByRunes, 100, 2))
	assert.Equal(t, []string{""}, WrapText("   ", measureByRunes, 100, 2))
}

func TestWrapTextSingleLine(t *testing.T) {
	lines := WrapText("Compra de combustible", measureByRunes, 500, 2)
	assert.Equal(t, []string{"Compra de combustible"}, lines)
}

func TestWrapTextGreedyPacking(t *testing.T) {
	// 45pt fits 9 characters: "uno dos" (7) fits, adding "tres" (12) does not
	lines := WrapText("uno dos tres", measureByRunes, 45, 3)
	assert.Equal(t, []string{"uno dos", "tres"}, lines)
}

func TestWrapTextTruncatesSilently(t *testing.T) {
	// The words past the two-line cap are dropped without an overflow marker
	lines := WrapText("uno dos tres cuatro cinco seis", measureByRunes, 45, 2)
	assert.Equal(t, []string{"uno dos", "tres"}, lines)
}

func TestWrapTextNeverExceedsMaxLines(t *testing.T) {
	text := strings.Repeat("palabra ", 50)
	for _, maxLines := range []int{1, 2, 3, 5} {
		lines := WrapText(text, measureByRunes, 60, maxLines)
		assert.LessOrEqual(t, len(lines), maxLines)
	}
}

func TestWrapTextOverwideWordKeptUnsplit(t *testing.T) {
	word := "supercalifragilistico"
	lines := WrapText(word, measureByRunes, 20, 2)
	assert.Equal(t, []string{word}, lines)
}

func TestWrapTextPreservesWordPrefix(t *testing.T) {
	text := "  pago   a  proveedor por   descarga de anchoveta en muelle  "
	normalized := strings.Join(strings.Fields(text), " ")

	lines := WrapText(text, measureByRunes, 80, 4)
	joined := strings.Join(lines, " ")

	assert.True(t, strings.HasPrefix(normalized, joined),
		"joined lines %q must be a prefix of %q", joined, normalized)
}

func TestWrapTextLinesFitWidth(t *testing.T) {
	lines := WrapText("deposito en cuenta corriente del proveedor", measureByRunes, 90, 10)
	for _, line := range lines {
		// A line only exceeds the width when it holds a single overwide word
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, measureByRunes(line), 90.0)
		}
	}
}
