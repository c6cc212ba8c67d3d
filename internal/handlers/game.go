package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/filling-server/internal/config"
	"github.com/vancomm/filling-server/internal/filling"
	"github.com/vancomm/filling-server/internal/middleware"
	"github.com/vancomm/filling-server/internal/repository"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}

	return handler
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	gameParams := filling.GameParams{Width: dto.Width, Height: dto.Height}

	var game *filling.GameState
	if dto.Desc != "" {
		game, err = filling.NewGameFromDesc(&gameParams, dto.Desc)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
	} else {
		game, err = filling.NewGame(&gameParams, g.rnd)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
	}

	var createParams repository.CreateGameSessionParams
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		playerId := int(claims.PlayerId)
		createParams.PlayerId = &playerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, createParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return
	}

	game, err := filling.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move := r.URL.Query().Get("move")
	if move == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(filling.ErrBadMove))
		return
	}

	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("could not fetch session from db", "error", err)
		return
	}

	game, err := filling.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return
	}

	if err := game.ApplyMove(move); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, err = g.saveGame(r, session, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("could not fetch session from db", "error", err)
		return
	}

	game, err := filling.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return
	}

	if err := game.Solve(); err != nil {
		if errors.Is(err, filling.ErrNoSolution) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to solve game", "error", err)
		return
	}

	session, err = g.saveGame(r, session, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

// saveGame persists a mutated game state, stamping ended_at the first
// time the game turns up completed.
func (g GameHandler) saveGame(
	r *http.Request, session *repository.GameSession, game *filling.GameState,
) (*repository.GameSession, error) {
	b, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	params := repository.UpdateGameSessionParams{
		State:     &b,
		Completed: &game.Completed,
		Cheated:   &game.Cheated,
	}
	if game.Completed && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
}
