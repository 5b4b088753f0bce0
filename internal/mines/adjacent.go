package mines

import (
	"fmt"
	"slices"
)

// neighborIndices returns the bitmap indices of every cell bordering
// (row, col) on a width x height grid: the eight (dr, dc) offsets filtered
// by the grid bounds. Corners end up with 3 neighbors, non-corner edge cells
// with 5, interior cells with 8.
func neighborIndices(row, col, width, height int) []int {
	indices := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= height || c < 0 || c >= width {
				continue
			}
			indices = append(indices, r*width+c)
		}
	}
	return indices
}

// CountAdjacent returns the number of mines bordering bitmap[index] on a
// rectangular grid of width columns.
func CountAdjacent(bitmap []bool, width, index int) (int, error) {
	if index < 0 || index >= len(bitmap) {
		return 0, ValidationError{fmt.Sprintf(
			"index %d out of bounds [0, %d)", index, len(bitmap),
		)}
	}
	if width <= 0 || len(bitmap)%width != 0 {
		return 0, ValidationError{fmt.Sprintf(
			"bitmap of %d cells does not form a rectangle of width %d",
			len(bitmap), width,
		)}
	}

	height := len(bitmap) / width
	candidates := neighborIndices(index/width, index%width, width, height)

	// neighborIndices cannot produce any of these; a violation here means the
	// classification above is broken.
	for _, i := range candidates {
		if i < 0 {
			return 0, ValidationError{fmt.Sprintf("negative neighbor index %d", i)}
		}
		if i >= len(bitmap) {
			return 0, ValidationError{fmt.Sprintf("neighbor index %d out of bounds", i)}
		}
	}

	slices.Sort(candidates)
	for i := 1; i < len(candidates); i++ {
		if candidates[i] == candidates[i-1] {
			return 0, ValidationError{fmt.Sprintf("duplicate neighbor index %d", candidates[i])}
		}
	}

	count := 0
	for _, i := range candidates {
		if bitmap[i] {
			count++
		}
	}
	return count, nil
}
