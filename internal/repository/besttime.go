// custom query
package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type BestTime struct {
	GameID int64 `json:"game_id"`
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
	TimeMs int64 `json:"time_ms"`
}

type BestTimeFilter struct {
	Width  *int32
	Height *int32
}

func (f BestTimeFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetBestTimes(
	ctx context.Context, filter BestTimeFilter,
) ([]BestTime, error) {
	query := `
	SELECT game_id, width, height, time_ms
	FROM game
	WHERE time_ms IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY time_ms LIMIT 100;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[BestTime])
}
