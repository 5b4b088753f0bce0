package mines

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitmapFromString(t *testing.T, bits string) []bool {
	t.Helper()
	bitmap := make([]bool, len(bits))
	for i := range bits {
		switch bits[i] {
		case '1':
			bitmap[i] = true
		case '0':
		default:
			t.Fatalf("invalid bitmap string %q", bits)
		}
	}
	return bitmap
}

// bruteForceAdjacent recounts neighbors the dumb way: walk the full 3x3
// window around the cell and clip it against the grid bounds.
func bruteForceAdjacent(bitmap []bool, width, index int) int {
	height := len(bitmap) / width
	row, col := index/width, index%width
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if r < 0 || r >= height || c < 0 || c >= width {
				continue
			}
			if bitmap[r*width+c] {
				count++
			}
		}
	}
	return count
}

func TestCountAdjacentCheckerboard(t *testing.T) {
	t.Parallel()

	// 3x3 checkerboard: mine, safe, mine / safe, mine, safe / mine, safe, mine
	bitmap := bitmapFromString(t, "101010101")
	expected := []int{2, 2, 2, 2, 4, 2, 2, 2, 2}

	for i, want := range expected {
		count, err := CountAdjacent(bitmap, 3, i)
		require.NoError(t, err)
		assert.Equal(t, want, count, "index %d", i)
	}
}

func TestCountAdjacentBruteForce(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for width := 1; width <= 8; width++ {
		for height := 1; height <= 8; height++ {
			bitmap := make([]bool, width*height)
			for i := range bitmap {
				bitmap[i] = r.Float64() < 0.4
			}
			for i := range bitmap {
				count, err := CountAdjacent(bitmap, width, i)
				require.NoError(t, err)
				assert.Equal(
					t, bruteForceAdjacent(bitmap, width, i), count,
					"%dx%d @ %d", width, height, i,
				)
			}
		}
	}
}

func TestCountAdjacentValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bitmap []bool
		width  int
		index  int
	}{
		{name: "negative index", bitmap: make([]bool, 9), width: 3, index: -1},
		{name: "index past end", bitmap: make([]bool, 9), width: 3, index: 9},
		{name: "non-rectangular bitmap", bitmap: make([]bool, 10), width: 3, index: 0},
		{name: "zero width", bitmap: make([]bool, 9), width: 0, index: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := CountAdjacent(test.bitmap, test.width, test.index)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestNeighborTopology(t *testing.T) {
	t.Parallel()

	// Square grids: 4 corners with 3 neighbors, 4*(N-2) edge cells with 5,
	// interior cells with 8.
	for _, n := range []int{3, 4, 5, 9} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			t.Parallel()
			var corners, edges, interior int
			for row := range n {
				for col := range n {
					switch len(neighborIndices(row, col, n, n)) {
					case 3:
						corners++
					case 5:
						edges++
					case 8:
						interior++
					default:
						t.Errorf("cell (%d, %d) has an impossible neighbor count", row, col)
					}
				}
			}
			assert.Equal(t, 4, corners)
			assert.Equal(t, 4*(n-2), edges)
			assert.Equal(t, (n-2)*(n-2), interior)
		})
	}
}

func TestNeighborTopologyRectangular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		row, col      int
		want          int
	}{
		{name: "tall corner", width: 3, height: 7, row: 6, col: 0, want: 3},
		{name: "tall bottom edge", width: 3, height: 7, row: 6, col: 1, want: 5},
		{name: "tall right edge", width: 3, height: 7, row: 3, col: 2, want: 5},
		{name: "wide interior", width: 7, height: 3, row: 1, col: 5, want: 8},
		{name: "single cell", width: 1, height: 1, row: 0, col: 0, want: 0},
		{name: "single column", width: 1, height: 5, row: 2, col: 0, want: 2},
		{name: "single row", width: 5, height: 1, row: 0, col: 0, want: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(
				t, neighborIndices(test.row, test.col, test.width, test.height),
				test.want,
			)
		})
	}
}
