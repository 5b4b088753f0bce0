package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board is one minesweeper field: the mine bitmap, its canonical key and the
// cells derived from it. A board is built either by drawing a fresh bitmap
// (Generate) or by rebuilding one from a previously issued key (Reconstruct);
// after that it is plain data, exclusively owned by its caller.
type Board struct {
	Width       int
	Height      int
	Probability float64
	Key         string
	Bits        string
	Cells       []Cell
}

// Generate draws one Bernoulli(probability) trial per cell, row-major, using
// the supplied random source. Callers generating boards concurrently must
// pass distinct *rand.Rand values.
func Generate(probability float64, width, height int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ValidationError{fmt.Sprintf(
			"board dimensions must be positive, got %d*%d", width, height,
		)}
	}
	if probability < 0 || probability > 1 {
		return nil, ValidationError{fmt.Sprintf(
			"mine probability must be within [0, 1], got %v", probability,
		)}
	}

	bitmap := make([]bool, width*height)
	for i := range bitmap {
		bitmap[i] = r.Float64() < probability
	}

	board := &Board{Width: width, Height: height, Probability: probability}
	if err := board.build(bitmap); err != nil {
		return nil, err
	}

	key, err := EncodeKey(board.Bits)
	if err != nil {
		return nil, err
	}
	board.Key = key
	return board, nil
}

// Reconstruct rebuilds the exact board a key was issued for. No new key is
// computed; the caller's key is retained after padding normalization, so a
// reconstructed board compares equal to the one that produced the key. Any
// stored mine probability is metadata only and is not restored here.
func Reconstruct(width, height int, key string) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ValidationError{fmt.Sprintf(
			"board dimensions must be positive, got %d*%d", width, height,
		)}
	}

	bits, err := DecodeKey(key, width*height)
	if err != nil {
		return nil, err
	}

	bitmap := make([]bool, len(bits))
	for i := range bits {
		bitmap[i] = bits[i] == '1'
	}

	board := &Board{Width: width, Height: height}
	if err := board.build(bitmap); err != nil {
		return nil, err
	}
	board.Key = normalizeKey(key, width*height)
	return board, nil
}

// normalizeKey pads a caller-supplied key up to the canonical hex width, so
// keys issued before their leading zeros were restored still compare equal
// to freshly encoded ones.
func normalizeKey(key string, cellCount int) string {
	if pad := (cellCount+3)/4 - len(key); pad > 0 {
		return strings.Repeat("0", pad) + key
	}
	return key
}

func (b *Board) build(bitmap []bool) error {
	cells := make([]Cell, len(bitmap))
	var bits strings.Builder
	for i, mine := range bitmap {
		count, err := CountAdjacent(bitmap, b.Width, i)
		if err != nil {
			return err
		}
		cells[i] = NewCell(mine, count)
		if mine {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	b.Cells = cells
	b.Bits = bits.String()
	return nil
}

// At returns a pointer to the cell at a row-major index so that gameplay
// logic can flip Revealed and Flagged in place.
func (b *Board) At(index int) *Cell {
	return &b.Cells[index]
}

// String renders the only serialized form the board exposes: "width*height:key".
func (b *Board) String() string {
	return fmt.Sprintf("%d*%d:%s", b.Width, b.Height, b.Key)
}

// ParseBoard reconstructs a board from its "width*height:key" form.
func ParseBoard(s string) (*Board, error) {
	var (
		width, height int
		key           string
	)
	n, err := fmt.Sscanf(s, "%d*%d:%s", &width, &height, &key)
	if n != 3 || err != nil {
		return nil, fmt.Errorf("invalid board descriptor %q (n = %d, err = %w)", s, n, err)
	}
	return Reconstruct(width, height, key)
}
