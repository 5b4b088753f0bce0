package handlers

import (
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuki-42/minesweeper/internal/mines"
	"github.com/Yuki-42/minesweeper/internal/repository"
)

func TestParseCreateGameDTO(t *testing.T) {
	t.Parallel()

	query := url.Values{
		"width":       {"9"},
		"height":      {"9"},
		"probability": {"0.2"},
		"extra":       {"ignored"},
	}

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)
	assert.Equal(t, CreateGameDTO{Width: 9, Height: 9, Probability: 0.2}, dto)
}

func TestParseCreateGameDTOMissingField(t *testing.T) {
	t.Parallel()

	_, err := ParseCreateGameDTO(url.Values{"width": {"9"}})
	require.Error(t, err)
}

func TestParseRecordTimeDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseRecordTimeDTO(url.Values{"time_ms": {"153000"}})
	require.NoError(t, err)
	assert.Equal(t, int64(153000), dto.TimeMs)

	_, err = ParseRecordTimeDTO(url.Values{})
	require.Error(t, err)
}

func TestNewGameDTO(t *testing.T) {
	t.Parallel()

	board, err := mines.Reconstruct(3, 3, "155")
	require.NoError(t, err)

	record := &repository.Game{
		GameID:   42,
		BoardKey: board.Key,
		Width:    3,
		Height:   3,
	}
	record.CreatedAt = pgtype.Timestamptz{Valid: true}

	dto := NewGameDTO(record, board)
	assert.Equal(t, "42", dto.GameID)
	assert.Equal(t, "3*3:155", dto.Board)
	assert.Equal(t, "155", dto.Key)
	assert.Nil(t, dto.TimeMs)
}
