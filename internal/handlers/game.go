package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yuki-42/minesweeper/internal/mines"
	"github.com/Yuki-42/minesweeper/internal/repository"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	// newRand yields a fresh generator per call so that concurrent requests
	// never share a random cursor.
	newRand func() *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	newRand func() *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		newRand: newRand,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	board, err := mines.Generate(dto.Probability, dto.Width, dto.Height, g.newRand())
	var ve mines.ValidationError
	if errors.As(err, &ve) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(ve))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a board", "error", err)
		return
	}

	record, err := g.repo.CreateGame(r.Context(), repository.CreateGameParams{
		BoardKey: board.Key,
		Width:    int32(board.Width),
		Height:   int32(board.Height),
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to insert game record", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameDTO(record, board))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := g.repo.FetchGame(r.Context(), gameID)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch game record from db", "error", err)
		return
	}

	board, err := mines.Reconstruct(int(record.Width), int(record.Height), record.BoardKey)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned an invalid game record", "error", err,
			"gameId", record.GameID, "boardKey", record.BoardKey)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameDTO(record, board))
}

func (g GameHandler) RecordTime(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dto, err := ParseRecordTimeDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	record, err := g.repo.RecordTime(r.Context(), gameID, dto.TimeMs)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update game record", "error", err)
		return
	}

	board, err := mines.Reconstruct(int(record.Width), int(record.Height), record.BoardKey)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned an invalid game record", "error", err,
			"gameId", record.GameID, "boardKey", record.BoardKey)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameDTO(record, board))
}

func (g GameHandler) BestTimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.BestTimeFilter{}

	if query.Has("width") {
		width, err := strconv.ParseInt(query.Get("width"), 10, 32)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w32 := int32(width)
		filter.Width = &w32
	}

	if query.Has("height") {
		height, err := strconv.ParseInt(query.Get("height"), 10, 32)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h32 := int32(height)
		filter.Height = &h32
	}

	bestTimes, err := g.repo.GetBestTimes(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch best times", "error", err,
			slog.Any("filter", filter))
		return
	}

	sendJSONOrLog(w, g.logger, bestTimes)
}
