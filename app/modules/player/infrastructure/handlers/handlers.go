package playerhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	playerservice "github.com/Black-And-White-Club/scorecard/app/modules/player/application"
	"github.com/Black-And-White-Club/scorecard/app/shared/httpx"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/go-chi/chi/v5"
)

// PlayerHandlers serves the player HTTP API.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandlers creates a new PlayerHandlers.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger) *PlayerHandlers {
	return &PlayerHandlers{service: service, logger: logger}
}

// Register mounts the player routes on r.
func (h *PlayerHandlers) Register(r chi.Router) {
	r.Route("/players", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{playerID}", h.HandleGet)
		r.Put("/{playerID}", h.HandleUpdate)
		r.Delete("/{playerID}", h.HandleDelete)
	})
}

func (h *PlayerHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

func (h *PlayerHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "playerID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.service.GetPlayer(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *PlayerHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req playerservice.CreatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.service.CreatePlayer(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "playerID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req playerservice.UpdatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.service.UpdatePlayer(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *PlayerHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "playerID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeletePlayer(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, playerservice.ErrPlayerNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, playerservice.ErrDuplicatePlayer):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, playerservice.ErrPlayerNameRequired),
		errors.Is(err, playerservice.ErrInvalidHandicap):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "player request failed",
			observability.RequestIDAttr(r.Context()),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
