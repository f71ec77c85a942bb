package report

import "strings"

// WrapText splits text into at most maxLines lines that each measure at most
// maxWidth, packing words greedily. Words past the line cap are dropped
// without an ellipsis; cells truncate silently. A single word wider than
// maxWidth is kept unsplit on its own line.
//
// The returned slice always has at least one element so callers can measure
// row height against it.
func WrapText(text string, measure func(string) float64, maxWidth float64, maxLines int) []string {
	if maxLines < 1 {
		maxLines = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, maxLines)
	current := words[0]

	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		lines = append(lines, current)
		if len(lines) == maxLines {
			return lines
		}
		current = word
	}

	return append(lines, current)
}
