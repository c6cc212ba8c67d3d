package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"
	"github.com/vancomm/filling-server/internal/filling"
	"github.com/vancomm/filling-server/internal/repository"
)

type CreateNewGameDTO struct {
	Width  int    `schema:"width,required"`
	Height int    `schema:"height,required"`
	Desc   string `schema:"desc"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string `json:"game_session_id"`
	Clues         string `json:"clues"`
	Board         string `json:"board"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Completed     bool   `json:"completed"`
	Cheated       bool   `json:"cheated"`
	StartedAt     int64  `json:"started_at"`
	EndedAt       *int64 `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	gameSessionId int,
	startedAt time.Time,
	endedAt *time.Time,
	g *filling.GameState,
) *GameSessionDTO {
	var endedAtInt *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		endedAtInt = &e
	}
	dto := &GameSessionDTO{
		GameSessionId: strconv.Itoa(gameSessionId),
		StartedAt:     startedAt.UnixMilli(),
		EndedAt:       endedAtInt,
		Clues:         g.Desc(),
		Board:         g.Board.Digits(),
		Width:         g.Width,
		Height:        g.Height,
		Completed:     g.Completed,
		Cheated:       g.Cheated,
	}
	return dto
}

func sessionDTO(session *repository.GameSession, g *filling.GameState) *GameSessionDTO {
	var endedAt *time.Time
	if session.EndedAt.Valid {
		endedAt = &session.EndedAt.Time
	}
	return NewGameSessionDTO(
		session.GameSessionId, session.StartedAt.Time, endedAt, g,
	)
}
