package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/Yuki-42/minesweeper/internal/handlers"
)

// createRand seeds an independent generator per call, so parallel board
// generation never observes a shared cursor.
func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.db, createRand)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/time", game.RecordTime)
	a.router.HandleFunc("GET /highscores", game.BestTimes)
}
