// Package grapheme splits edit text into user-perceived characters and
// measures them in terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters[start:end], clamping the range.
func Join(clusters []string, start, end int) string {
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	if start == end {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters[start:end] {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width is the cell width of one cluster. Zero-width clusters count as one
// cell so the cursor can always land on them.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 && cluster != "" {
		return 1
	}
	return w
}

// Cells returns the total cell width of clusters.
func Cells(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += Width(c)
	}
	return n
}

// IndexAt maps a cell offset to the cluster index whose left half covers it.
// Offsets past the end map to len(clusters).
func IndexAt(clusters []string, x int) int {
	if x <= 0 {
		return 0
	}
	cell := 0
	for i, c := range clusters {
		w := Width(c)
		if x < cell+(w+1)/2 {
			return i
		}
		cell += w
		if x < cell {
			return i + 1
		}
	}
	return len(clusters)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
