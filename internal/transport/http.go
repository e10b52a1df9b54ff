package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/taskboard/internal/domain/board"
	"github.com/ganot/taskboard/internal/view"
)

// maxDropPayload bounds the drop request body; the payload is a single
// project id.
const maxDropPayload = 1024

// BoardService defines the board operations the transport needs.
type BoardService interface {
	CreateProject(ctx context.Context, req board.CreateRequest) (string, error)
	MoveProject(ctx context.Context, id string, status board.Status) bool
}

// Server wires the board HTTP surface.
type Server struct {
	board   BoardService
	columns map[board.Status]*view.ColumnBinding
	logger  *slog.Logger
}

// NewServer creates the chi router for the board UI. mcpHandler, when
// non-nil, is mounted under /mcp.
func NewServer(svc BoardService, active, finished *view.ColumnBinding, mcpHandler http.Handler, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{
		board: svc,
		columns: map[board.Status]*view.ColumnBinding{
			board.StatusActive:   active,
			board.StatusFinished: finished,
		},
		logger: logger,
	}

	r := chi.NewRouter()

	r.Get("/", srv.handleBoard)
	r.Get("/columns/{status}", srv.handleColumn)
	r.Post("/projects", srv.handleCreate)
	r.Post("/columns/{status}/drop", srv.handleDrop)
	r.Get("/health", srv.handleHealth)

	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleBoard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	active := s.columns[board.StatusActive].Fragment()
	finished := s.columns[board.StatusFinished].Fragment()
	if err := view.RenderBoard(w, active, finished); err != nil {
		s.logger.Error("render board", "error", err)
	}
}

func (s *Server) handleColumn(w http.ResponseWriter, r *http.Request) {
	status, err := board.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, s.columns[status].Fragment())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	people, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("people")))
	if err != nil {
		http.Error(w, "invalid input, please try again", http.StatusUnprocessableEntity)
		return
	}

	id, err := s.board.CreateProject(r.Context(), board.CreateRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		People:      people,
	})
	if err != nil {
		if errors.Is(err, board.ErrInvalidInput) {
			http.Error(w, "invalid input, please try again", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// handleDrop processes a drag-and-drop transition. The dragged payload is
// the project id as text/plain; the column named in the path maps every
// drop to its own status. Unknown ids are a no-op, not an error.
func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	status, err := board.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "text/plain") {
		http.Error(w, "expected text/plain payload", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDropPayload))
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(string(body))
	if id == "" {
		http.Error(w, "missing project id", http.StatusBadRequest)
		return
	}

	moved := s.board.MoveProject(r.Context(), id, status)
	s.logger.Debug("drop handled", "id", id, "status", string(status), "moved", moved)

	w.WriteHeader(http.StatusNoContent)
}
