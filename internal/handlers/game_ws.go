package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/vancomm/filling-server/internal/filling"
)

var commandNargs = map[string]int{
	"g": 0,
	"m": 2,
	"s": 0,
}

func parseCommand(g *filling.GameState, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "m":
		if _, err := strconv.Atoi(parts[1]); err != nil {
			return fmt.Errorf("first argument must be an int")
		}
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return fmt.Errorf("second argument must be an int")
		}
		return g.ApplyMove(parts[1] + "_" + parts[2])
	case "s":
		return g.Solve()
	}
	return fmt.Errorf("invalid command")
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
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
		g.logger.Error("could not fetch session from db", slog.Any("error", err))
		return
	}

	game, err := filling.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.logger.Debug(fmt.Sprintf("\t> %s", text))
		for _, line := range strings.Split(text, "\n") {
			cmd := strings.TrimSpace(line)
			if cmd == "" {
				continue
			}
			if err := parseCommand(game, cmd); err != nil {
				if err := c.WriteJSON(wrapError(err)); err != nil {
					g.logger.Error("unable to write json", slog.Any("error", err))
					return
				}
				continue
			}
			if game.Completed {
				break
			}
		}

		session, err = g.saveGame(r, session, game)
		if err != nil {
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		if err := c.WriteJSON(sessionDTO(session, game)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		g.logger.Debug("\t< <session data>")
	}
}
