package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/filling-server/internal/config"
	"github.com/vancomm/filling-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.db, a.cookies, a.ws, createRand(),
	)
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	highscores := handlers.NewHighscoreHandler(a.logger, a.db)

	base := config.BasePath()

	a.router.HandleFunc("POST "+base+"/game", game.NewGame)
	a.router.HandleFunc("GET "+base+"/game/{id}", game.Fetch)
	a.router.HandleFunc("POST "+base+"/game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST "+base+"/game/{id}/solve", game.Solve)
	a.router.HandleFunc(base+"/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET "+base+"/highscores", highscores.Fetch)

	a.router.HandleFunc("GET "+base+"/status", auth.Status)
	a.router.HandleFunc("POST "+base+"/register", auth.Register)
	a.router.HandleFunc("POST "+base+"/login", auth.Login)
	a.router.HandleFunc("POST "+base+"/logout", auth.Logout)
}
