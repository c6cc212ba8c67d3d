package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vancomm/filling-server/internal/filling"
	"github.com/vancomm/filling-server/internal/repository"
)

type HighscoreHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewHighscoreHandler(logger *slog.Logger, db *pgxpool.Pool) *HighscoreHandler {
	return &HighscoreHandler{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (h HighscoreHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("params") {
		gameParams, err := filling.ParseGameParams(query.Get("params"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		filter.GameParams = gameParams
	}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	highscores, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("failed to fetch highscores",
			slog.Any("error", err), slog.Any("filter", filter))
		return
	}

	sendJSONOrLog(w, h.logger, highscores)
}
