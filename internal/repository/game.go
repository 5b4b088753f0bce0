package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Game is one persisted board: the key it can be rebuilt from, its
// dimensions, and the elapsed time once the player finishes. The record never
// stores the mine probability a board was generated with; the key alone
// defines the board.
type Game struct {
	GameID    int64
	BoardKey  string
	Width     int32
	Height    int32
	TimeMs    *int64
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreateGameParams struct {
	BoardKey string
	Width    int32
	Height   int32
}

func (q *Queries) CreateGame(ctx context.Context, params CreateGameParams) (*Game, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game (board_key, width, height)
		VALUES (@board_key, @width, @height)
		RETURNING *;`,
		pgx.NamedArgs{
			"board_key": params.BoardKey,
			"width":     params.Width,
			"height":    params.Height,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Game])
}

func (q *Queries) FetchGame(ctx context.Context, gameID int64) (*Game, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM game WHERE game_id = $1", gameID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Game])
}

func (q *Queries) RecordTime(ctx context.Context, gameID int64, timeMs int64) (*Game, error) {
	rows, _ := q.db.Query(
		ctx,
		`UPDATE game
		SET time_ms = @time_ms, updated_at = now()
		WHERE game_id = @game_id
		RETURNING *;`,
		pgx.NamedArgs{
			"game_id": gameID,
			"time_ms": timeMs,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Game])
}
