package roundhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	"github.com/Black-And-White-Club/scorecard/app/shared/httpx"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/go-chi/chi/v5"
)

// RoundHandlers serves the round HTTP API.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{service: service, logger: logger}
}

// Register mounts the round routes on r.
func (h *RoundHandlers) Register(r chi.Router) {
	r.Route("/rounds", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/stats", h.HandleStats)
		r.Route("/{roundID}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Delete("/", h.HandleDelete)
			r.Get("/export", h.HandleExport)
			r.Put("/holes/{holeNumber}", h.HandleUpdateHole)
		})
	})
}

func (h *RoundHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.service.ListRounds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rounds)
}

func (h *RoundHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

func (h *RoundHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roundservice.CreateRoundRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	round, err := h.service.CreateRound(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, round)
}

func (h *RoundHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "roundID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	round, err := h.service.GetRound(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, round)
}

func (h *RoundHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "roundID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteRound(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Round deleted successfully"})
}

func (h *RoundHandlers) HandleUpdateHole(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "roundID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	holeNumber, err := httpx.IntParam(r, "holeNumber")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch roundservice.HolePatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	update, err := h.service.UpdateHole(r.Context(), id, holeNumber, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, update)
}

func (h *RoundHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "roundID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.service.ExportScorecard(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", card.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", card.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(card.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(card.Data); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to write scorecard export",
			observability.RequestIDAttr(r.Context()),
			slog.Any("error", err),
		)
	}
}

func (h *RoundHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, roundservice.ErrRoundNotFound),
		errors.Is(err, roundservice.ErrHoleNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case roundservice.IsFailure(err):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "round request failed",
			observability.RequestIDAttr(r.Context()),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
