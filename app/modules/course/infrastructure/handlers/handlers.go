package coursehandlers

import (
	"errors"
	"log/slog"
	"net/http"

	courseservice "github.com/Black-And-White-Club/scorecard/app/modules/course/application"
	"github.com/Black-And-White-Club/scorecard/app/shared/httpx"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/go-chi/chi/v5"
)

// CourseHandlers serves the course, tee and hole HTTP API.
type CourseHandlers struct {
	service courseservice.Service
	logger  *slog.Logger
}

// NewCourseHandlers creates a new CourseHandlers.
func NewCourseHandlers(service courseservice.Service, logger *slog.Logger) *CourseHandlers {
	return &CourseHandlers{service: service, logger: logger}
}

// addHolesRequest is the body of POST .../holes.
type addHolesRequest struct {
	Holes []courseservice.HoleInput `json:"holes"`
}

// Register mounts the course routes on r.
func (h *CourseHandlers) Register(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.HandleListCourses)
		r.Post("/", h.HandleCreateCourse)
		r.Route("/{courseID}", func(r chi.Router) {
			r.Get("/", h.HandleGetCourse)
			r.Get("/tees", h.HandleListTees)
			r.Post("/tees", h.HandleCreateTee)
			r.Get("/tees/{teeID}/holes", h.HandleListHoles)
			r.Post("/tees/{teeID}/holes", h.HandleAddHoles)
			r.Put("/tees/{teeID}/holes/{holeNumber}", h.HandleUpdateHole)
		})
	})
}

func (h *CourseHandlers) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, courses)
}

func (h *CourseHandlers) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, course)
}

func (h *CourseHandlers) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req courseservice.CreateCourseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.CreateCourse(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, course)
}

func (h *CourseHandlers) HandleListTees(w http.ResponseWriter, r *http.Request) {
	courseID, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tees, err := h.service.ListTees(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tees)
}

func (h *CourseHandlers) HandleCreateTee(w http.ResponseWriter, r *http.Request) {
	courseID, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req courseservice.CreateTeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tee, err := h.service.CreateTee(r.Context(), courseID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, tee)
}

func (h *CourseHandlers) HandleListHoles(w http.ResponseWriter, r *http.Request) {
	courseID, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	teeID, err := httpx.UUIDParam(r, "teeID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	holes, err := h.service.ListHoles(r.Context(), courseID, teeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, holes)
}

func (h *CourseHandlers) HandleAddHoles(w http.ResponseWriter, r *http.Request) {
	courseID, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	teeID, err := httpx.UUIDParam(r, "teeID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req addHolesRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	holes, err := h.service.AddHoles(r.Context(), courseID, teeID, req.Holes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, holes)
}

func (h *CourseHandlers) HandleUpdateHole(w http.ResponseWriter, r *http.Request) {
	courseID, err := httpx.UUIDParam(r, "courseID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	teeID, err := httpx.UUIDParam(r, "teeID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	holeNumber, err := httpx.IntParam(r, "holeNumber")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req courseservice.UpdateHoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	hole, err := h.service.UpdateHole(r.Context(), courseID, teeID, holeNumber, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hole)
}

func (h *CourseHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, courseservice.ErrCourseNotFound),
		errors.Is(err, courseservice.ErrTeeNotFound),
		errors.Is(err, courseservice.ErrHoleNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, courseservice.ErrDuplicateHoleNumber):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case courseservice.IsFailure(err):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "course request failed",
			observability.RequestIDAttr(r.Context()),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
