package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/Yuki-42/minesweeper/internal/mines"
	"github.com/Yuki-42/minesweeper/internal/repository"
)

type CreateGameDTO struct {
	Width       int     `schema:"width,required"`
	Height      int     `schema:"height,required"`
	Probability float64 `schema:"probability,required"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type RecordTimeDTO struct {
	TimeMs int64 `schema:"time_ms,required"`
}

func ParseRecordTimeDTO(src map[string][]string) (RecordTimeDTO, error) {
	var dto RecordTimeDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameDTO is what clients get back for a game: the record identity plus the
// board descriptor they need to lay the field out themselves. Mine positions
// travel only inside the key.
type GameDTO struct {
	GameID    string `json:"game_id"`
	Board     string `json:"board"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Key       string `json:"key"`
	TimeMs    *int64 `json:"time_ms,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func NewGameDTO(record *repository.Game, board *mines.Board) *GameDTO {
	return &GameDTO{
		GameID:    strconv.FormatInt(record.GameID, 10),
		Board:     board.String(),
		Width:     board.Width,
		Height:    board.Height,
		Key:       board.Key,
		TimeMs:    record.TimeMs,
		CreatedAt: record.CreatedAt.Time.UnixMilli(),
	}
}
